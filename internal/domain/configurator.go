package domain

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	orderPlacedFormat = "Order Placed! Your %s cookie with %s and %s costs $%s."
	orderNeedsBase    = "Please select a cookie base first!"
)

// OrderResult — текст для alert-а после нажатия "Заказать"
type OrderResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Total   string `json:"total,omitempty"`
}

// Configurator — состояние одного покупателя и цикл "изменить -> найти картинку -> отрисовать".
// Не потокобезопасен: вызывающий сериализует события (см. handlers.Session).
type Configurator struct {
	assets   *AssetTable
	logger   *zap.Logger
	cookie   Configuration
	selected map[Category]string
	view     View
}

// NewConfigurator создаёт конфигуратор в стартовом состоянии (Reset).
func NewConfigurator(assets *AssetTable, logger *zap.Logger) *Configurator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if assets == nil {
		assets = NewAssetTable(nil)
	}
	c := &Configurator{assets: assets, logger: logger}
	c.Reset()
	return c
}

// Select перезаписывает слот категории и подсветку только этой категории.
func (c *Configurator) Select(cat Category, name, id string, cost float64) (View, error) {
	next, err := c.cookie.With(cat, Selection{Name: name, ID: id, Cost: cost})
	if err != nil {
		return c.view, err
	}
	c.cookie = next
	c.selected[cat] = id
	return c.render(), nil
}

// SelectIngredient — Select по кнопке каталога
func (c *Configurator) SelectIngredient(i Ingredient) (View, error) {
	return c.Select(i.Category, i.Name, i.ID, i.Cost)
}

// Reset возвращает всё в None/none/0.00 и снимает подсветку.
func (c *Configurator) Reset() View {
	c.cookie = NewConfiguration()
	c.selected = make(map[Category]string)
	return c.render()
}

// Order ничего не меняет, только формирует сообщение.
func (c *Configurator) Order() OrderResult {
	if c.cookie.Base.IsNone() {
		return OrderResult{OK: false, Message: orderNeedsBase}
	}
	total := FormatPrice(c.cookie.TotalCost())
	return OrderResult{
		OK:      true,
		Message: fmt.Sprintf(orderPlacedFormat, c.cookie.Base.Name, c.cookie.Frosting.Name, c.cookie.Topping.Name, total),
		Total:   total,
	}
}

// State — текущая конфигурация (копия)
func (c *Configurator) State() Configuration {
	return c.cookie
}

// Refresh заново ищет картинку для текущего состояния: таблицу могли поправить через админку.
func (c *Configurator) Refresh() View {
	return c.render()
}

// View — последний отрисованный вид
func (c *Configurator) View() View {
	return c.view
}

func (c *Configurator) render() View {
	res := c.assets.Resolve(c.cookie)
	if res.Missing {
		c.logger.Warn("image missing for combination",
			zap.String("key", res.Key),
		)
	}
	c.view = Render(c.cookie, res, c.selected)
	return c.view
}
