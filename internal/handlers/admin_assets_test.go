package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAdminEnv(t *testing.T) *Env {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	e := newTestEnv()
	e.AdminPasswordHash = string(hash)
	return e
}

func adminRequest(method, target, body, pass string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if pass != "" {
		req.SetBasicAuth(adminUser, pass)
	}
	return req
}

func TestAdminAssets_Disabled(t *testing.T) {
	e := newTestEnv()
	rec := httptest.NewRecorder()
	e.HandleAdminAssets(rec, adminRequest(http.MethodGet, "/api/admin/assets", "", "s3cret"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminAssets_WrongPassword(t *testing.T) {
	e := newAdminEnv(t)

	for _, pass := range []string{"", "wrong"} {
		rec := httptest.NewRecorder()
		e.HandleAdminAssets(rec, adminRequest(http.MethodGet, "/api/admin/assets", "", pass))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
	}
}

func TestAdminAssets_ListWithCoverage(t *testing.T) {
	e := newAdminEnv(t)
	rec := httptest.NewRecorder()
	e.HandleAdminAssets(rec, adminRequest(http.MethodGet, "/api/admin/assets", "", "s3cret"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp assetsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Items, e.Assets.Len())
	assert.Contains(t, resp.Missing, "vanilla_whitecream_drizzle")
}

func TestAdminAssets_UpsertFillsGap(t *testing.T) {
	e := newAdminEnv(t)
	c := &client{t: t}

	c.selectJSON(e, "base", "vanilla")
	c.selectJSON(e, "frosting", "whitecream")
	v := decodeView(t, c.selectJSON(e, "topping", "drizzle"))
	require.False(t, v.FaceVisible)

	rec := httptest.NewRecorder()
	e.HandleAdminAssets(rec, adminRequest(http.MethodPost, "/api/admin/assets",
		`{"key":"vanilla_whitecream_drizzle","path":"photoCookie/vanilla-white-drizzle.jpg"}`, "s3cret"))
	require.Equal(t, http.StatusOK, rec.Code)

	// следующее событие уже видит новую строку
	v = decodeView(t, c.selectJSON(e, "topping", "drizzle"))
	assert.True(t, v.FaceVisible)
	assert.Equal(t, "photoCookie/vanilla-white-drizzle.jpg", v.Background)
	assert.NotContains(t, e.Assets.Coverage(e.Catalog), "vanilla_whitecream_drizzle")
}

func TestAdminAssets_UpsertValidates(t *testing.T) {
	e := newAdminEnv(t)

	for _, body := range []string{
		`{"key":"none_none_none","path":"x.jpg"}`,
		`{"key":"oatmeal_none_none","path":"x.jpg"}`,
		`{"key":"vanilla_none_none","path":""}`,
		`{"key":`,
	} {
		rec := httptest.NewRecorder()
		e.HandleAdminAssets(rec, adminRequest(http.MethodPost, "/api/admin/assets", body, "s3cret"))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestAdminAssets_Delete(t *testing.T) {
	e := newAdminEnv(t)

	rec := httptest.NewRecorder()
	e.HandleAdminAssets(rec, adminRequest(http.MethodDelete, "/api/admin/assets?key=matcha_none_none", "", "s3cret"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok := e.Assets.Lookup("matcha_none_none")
	assert.False(t, ok)

	rec = httptest.NewRecorder()
	e.HandleAdminAssets(rec, adminRequest(http.MethodDelete, "/api/admin/assets?key=matcha_none_none", "", "s3cret"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	e.HandleAdminAssets(rec, adminRequest(http.MethodDelete, "/api/admin/assets", "", "s3cret"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminAssets_EditsShowOnCurrentView(t *testing.T) {
	e := newAdminEnv(t)
	c := &client{t: t}

	c.selectJSON(e, "base", "vanilla")
	c.selectJSON(e, "frosting", "whitecream")
	c.selectJSON(e, "topping", "drizzle")

	rec := httptest.NewRecorder()
	e.HandleAdminAssets(rec, adminRequest(http.MethodPost, "/api/admin/assets",
		`{"key":"vanilla_whitecream_drizzle","path":"x.jpg"}`, "s3cret"))
	require.Equal(t, http.StatusOK, rec.Code)

	v := decodeView(t, c.do(e.HandleCookie, http.MethodGet, "/api/cookie", nil, ""))
	assert.Equal(t, "x.jpg", v.Background)
	assert.True(t, v.FaceVisible)

	body := c.do(e.HandlePage, http.MethodGet, "/", nil, "").Body.String()
	assert.Contains(t, body, "/img/x.jpg")
	assert.Contains(t, body, "visibility: visible")

	rec = httptest.NewRecorder()
	e.HandleAdminAssets(rec, adminRequest(http.MethodDelete, "/api/admin/assets?key=vanilla_whitecream_drizzle", "", "s3cret"))
	require.Equal(t, http.StatusNoContent, rec.Code)

	v = decodeView(t, c.do(e.HandleCookie, http.MethodGet, "/api/cookie", nil, ""))
	assert.Empty(t, v.Background)
	assert.False(t, v.FaceVisible)

	body = c.do(e.HandleOrder, http.MethodPost, "/order", nil, "").Body.String()
	assert.NotContains(t, body, "/img/x.jpg")
	assert.Contains(t, body, "visibility: hidden")
}
