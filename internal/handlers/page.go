package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"cookie-builder/internal/domain"
)

type pageButton struct {
	domain.Ingredient
	Price    string
	Selected bool
}

type pageGroup struct {
	Category domain.Category
	Title    string
	Buttons  []pageButton
}

type pageData struct {
	View       domain.View
	Groups     []pageGroup
	Background template.CSS
	Face       template.CSS
	Alert      string
}

var groupTitles = map[domain.Category]string{
	domain.CategoryBase:     "1. Choose your base",
	domain.CategoryFrosting: "2. Add a frosting",
	domain.CategoryTopping:  "3. Pick a topping",
}

// assetURL превращает путь из таблицы в URL под AssetPrefix.
// Пути в таблице бывают с пробелами, скобками и не-ASCII.
func (e *Env) assetURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	segs := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	prefix := e.AssetPrefix
	if prefix == "" {
		prefix = "/img/"
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.Join(segs, "/")
}

func (e *Env) buildPage(v domain.View, alert string) pageData {
	d := pageData{View: v, Alert: alert}

	if v.Background != "" {
		u := strings.ReplaceAll(e.assetURL(v.Background), "'", "%27")
		d.Background = template.CSS("background-image: url('" + u + "')")
	} else {
		d.Background = template.CSS("background-image: none")
	}
	if v.FaceVisible {
		d.Face = template.CSS("visibility: visible")
	} else {
		d.Face = template.CSS("visibility: hidden")
	}

	for _, cat := range domain.Categories {
		g := pageGroup{Category: cat, Title: groupTitles[cat]}
		for _, ing := range e.Catalog.ByCategory(cat) {
			g.Buttons = append(g.Buttons, pageButton{
				Ingredient: ing,
				Price:      domain.FormatPrice(ing.Cost),
				Selected:   v.IsSelected(cat, ing.ID),
			})
		}
		d.Groups = append(d.Groups, g)
	}
	return d
}

// renderPage рисует конфигуратор целиком.
func (e *Env) renderPage(w http.ResponseWriter, v domain.View, alert string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTmpl.Execute(w, e.buildPage(v, alert)); err != nil {
		e.Logger.Error("render page", zap.Error(err))
	}
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>Build your own cookie</title>
	<style>
		body {
			margin: 0;
			font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
			background: #fdf6ec;
			color: #3b2a1a;
		}
		.wrapper {
			min-height: 100vh;
			display: flex;
			align-items: center;
			justify-content: center;
			padding: 24px;
		}
		.card {
			background: #ffffff;
			border-radius: 16px;
			box-shadow: 0 20px 45px rgba(59, 42, 26, 0.18);
			max-width: 960px;
			width: 100%;
			padding: 20px;
		}
		.layout {
			display: grid;
			grid-template-columns: 1fr 1fr;
			gap: 16px;
		}
		#cookie-base {
			position: relative;
			width: 320px;
			height: 320px;
			border-radius: 50%;
			background-color: #f3e3cc;
			background-size: cover;
			background-position: center;
		}
		.cookie-face {
			position: absolute;
			inset: 0;
			display: flex;
			align-items: center;
			justify-content: center;
			font-size: 48px;
		}
		.group {
			margin-bottom: 12px;
		}
		.group form {
			display: inline;
		}
		.ingredient-btn {
			border-radius: 999px;
			border: 1px solid #e5d3bb;
			background: #fffaf3;
			padding: 4px 12px;
			margin: 2px;
			cursor: pointer;
		}
		.ingredient-btn.selected {
			background: #8b5a2b;
			border-color: #8b5a2b;
			color: #ffffff;
		}
		.total-row {
			font-size: 18px;
			font-weight: 600;
			margin: 12px 0;
		}
		.alert {
			border-radius: 10px;
			border: 1px solid #e5d3bb;
			padding: 10px 14px;
			margin-bottom: 12px;
		}
	</style>
</head>
<body>
	<div class="wrapper">
		<div class="card">
			<h1>Build your own cookie</h1>
			{{if .Alert}}<dialog class="alert" open role="alert">{{.Alert}}<form method="dialog"><button>OK</button></form></dialog>{{end}}
			<div class="layout">
				<div>
					<div id="cookie-base" style="{{.Background}}">
						<div class="cookie-face" style="{{.Face}}">&#x1F60B;</div>
					</div>
				</div>
				<div>
					{{range .Groups}}
					<div class="group">
						<div class="section-label">{{.Title}}</div>
						{{range .Buttons}}
						<form method="post" action="/select">
							<input type="hidden" name="type" value="{{.Category}}">
							<input type="hidden" name="id" value="{{.ID}}">
							<button type="submit" class="ingredient-btn{{if .Selected}} selected{{end}}"
								data-type="{{.Category}}" data-name="{{.Name}}" data-id="{{.ID}}" data-cost="{{.Price}}">
								{{.Name}} (${{.Price}})
							</button>
						</form>
						{{end}}
					</div>
					{{end}}
					<div class="total-row">Total: $<span id="current-price">{{.View.Price}}</span></div>
					<form method="post" action="/reset" style="display:inline">
						<button id="reset-button" type="submit">Start over</button>
					</form>
					<form method="post" action="/order" style="display:inline">
						<button id="order-button" type="submit">Order</button>
					</form>
				</div>
			</div>
		</div>
	</div>
</body>
</html>`))
