package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeKey_Order(t *testing.T) {
	c := NewConfiguration()
	c.Base = Selection{Name: "Matcha", ID: "matcha", Cost: 3.25}
	c.Topping = Selection{Name: "Drizzle", ID: "drizzle", Cost: 0.6}

	assert.Equal(t, "matcha_none_drizzle", c.Key())

	b, f, tp, err := SplitKey(c.Key())
	require.NoError(t, err)
	assert.Equal(t, []string{"matcha", "none", "drizzle"}, []string{b, f, tp})
}

func TestSplitKey_Invalid(t *testing.T) {
	for _, key := range []string{"", "a_b", "a__c", "a_b_c_d"} {
		_, _, _, err := SplitKey(key)
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestResolve(t *testing.T) {
	table := NewAssetTable(DefaultAssetEntries())

	cases := []struct {
		name    string
		cfg     Configuration
		path    string
		missing bool
	}{
		{
			name: "base only",
			cfg:  Configuration{Base: Selection{ID: "redvelvet"}, Frosting: NoneSelection(), Topping: NoneSelection()},
			path: "MG/redvelvet.jpg",
		},
		{
			name: "no base",
			cfg:  NewConfiguration(),
		},
		{
			name: "no base with frosting",
			cfg:  Configuration{Base: NoneSelection(), Frosting: Selection{ID: "pinkicing"}, Topping: Selection{ID: "sprinkles"}},
		},
		{
			name:    "unmapped",
			cfg:     Configuration{Base: Selection{ID: "vanilla"}, Frosting: Selection{ID: "whitecream"}, Topping: Selection{ID: "drizzle"}},
			missing: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := table.Resolve(tc.cfg)
			assert.Equal(t, tc.path, res.Path)
			assert.Equal(t, tc.path != "", res.Found)
			assert.Equal(t, tc.missing, res.Missing)
		})
	}
}

func TestAssetTable_EmptyPathIsMiss(t *testing.T) {
	table := NewAssetTable([]AssetEntry{{Key: "vanilla_none_none", Path: ""}})
	res := table.Resolve(Configuration{Base: Selection{ID: "vanilla"}, Frosting: NoneSelection(), Topping: NoneSelection()})
	assert.False(t, res.Found)
	assert.True(t, res.Missing)
}

func TestAssetTable_SetDeleteEntries(t *testing.T) {
	table := NewAssetTable(nil)
	table.Set("vanilla_none_none", "b.jpg")
	table.Set("chocolate_none_none", "a.jpg")

	assert.Equal(t, []AssetEntry{
		{Key: "chocolate_none_none", Path: "a.jpg"},
		{Key: "vanilla_none_none", Path: "b.jpg"},
	}, table.Entries())

	assert.True(t, table.Delete("vanilla_none_none"))
	assert.False(t, table.Delete("vanilla_none_none"))
	assert.Equal(t, 1, table.Len())
}

func TestValidateTable(t *testing.T) {
	cat := DefaultCatalog()
	require.NoError(t, ValidateTable(cat, DefaultAssetEntries()))

	err := ValidateTable(cat, []AssetEntry{
		{Key: "none_none_none", Path: ""},
		{Key: "oatmeal_none_none", Path: "o.jpg"},
		{Key: "vanilla_none", Path: "v.jpg"},
		{Key: "vanilla_none_none", Path: ""},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none_none_none")
	assert.Contains(t, err.Error(), "oatmeal")
	assert.Contains(t, err.Error(), "vanilla_none")
	assert.Contains(t, err.Error(), "empty path")
}

func TestCoverage(t *testing.T) {
	cat := DefaultCatalog()
	table := NewAssetTable(DefaultAssetEntries())

	missing := table.Coverage(cat)

	// 4 основы * 3 глазури * 3 топпинга
	assert.Len(t, missing, 4*3*3-len(DefaultAssetEntries()))
	assert.Contains(t, missing, "vanilla_whitecream_drizzle")
	assert.NotContains(t, missing, "redvelvet_none_none")
	for _, k := range missing {
		assert.NotEqual(t, "none", k[:4])
	}
}

func TestValidateCatalog(t *testing.T) {
	require.NoError(t, ValidateCatalog(DefaultCatalog()))

	bad := &Catalog{Ingredients: []Ingredient{
		{Category: CategoryBase, ID: NoneID, Name: "None"},
		{Category: "filling", ID: "jam", Name: "Jam"},
		{Category: CategoryTopping, ID: "choc_chips", Name: "Chips"},
		{Category: CategoryTopping, ID: "nuts", Name: "", Cost: -1},
	}}
	err := ValidateCatalog(bad)
	require.Error(t, err)
	for _, want := range []string{"base cannot be", "unknown type", "must not contain", "empty name", "cost must be", "no base"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestCatalog_FindAndOrder(t *testing.T) {
	cat := DefaultCatalog()

	ing, err := cat.Find(CategoryFrosting, "whitecream")
	require.NoError(t, err)
	assert.Equal(t, Selection{Name: "White Cream", ID: "whitecream", Cost: 1.00}, ing.Selection())

	_, err = cat.Find(CategoryBase, "oatmeal")
	assert.ErrorIs(t, err, ErrUnknownIngredient)
	_, err = cat.Find("filling", "jam")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	bases := cat.ByCategory(CategoryBase)
	require.Len(t, bases, 4)
	assert.Equal(t, "redvelvet", bases[0].ID)
	assert.Equal(t, []string{"none", "pinkicing", "whitecream"}, cat.IDs(CategoryFrosting))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0.00", FormatPrice(0))
	assert.Equal(t, "3.50", FormatPrice(2.5+1.0))
	assert.Equal(t, "4.35", FormatPrice(3.25+0.5+0.6))
}
