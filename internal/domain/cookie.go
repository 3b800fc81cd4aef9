package domain

import (
	"errors"
	"strconv"
)

// Category — слот конфигуратора: основа, глазурь или топпинг
type Category string

const (
	CategoryBase     Category = "base"
	CategoryFrosting Category = "frosting"
	CategoryTopping  Category = "topping"
)

// Categories в фиксированном порядке составного ключа
var Categories = []Category{CategoryBase, CategoryFrosting, CategoryTopping}

const (
	NoneID   = "none"
	NoneName = "None"
)

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownIngredient = errors.New("unknown ingredient")
	ErrInvalidKey        = errors.New("invalid composite key")
)

// ParseCategory проверяет строку из data-type / формы.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryBase, CategoryFrosting, CategoryTopping:
		return Category(s), nil
	}
	return "", ErrUnknownCategory
}

// Selection — текущий выбор в одной категории
type Selection struct {
	Name string  `json:"name"`
	ID   string  `json:"id"`
	Cost float64 `json:"cost"`
}

// NoneSelection — "ничего не выбрано"
func NoneSelection() Selection {
	return Selection{Name: NoneName, ID: NoneID, Cost: 0}
}

// IsNone — слот пустой
func (s Selection) IsNone() bool {
	return s.ID == NoneID
}

// Configuration — три слота. Итоговая цена не хранится, а всегда считается.
type Configuration struct {
	Base     Selection `json:"base"`
	Frosting Selection `json:"frosting"`
	Topping  Selection `json:"topping"`
}

// NewConfiguration возвращает стартовое состояние (всё "none").
func NewConfiguration() Configuration {
	return Configuration{
		Base:     NoneSelection(),
		Frosting: NoneSelection(),
		Topping:  NoneSelection(),
	}
}

// TotalCost = base + frosting + topping
func (c Configuration) TotalCost() float64 {
	return c.Base.Cost + c.Frosting.Cost + c.Topping.Cost
}

// Get возвращает слот по категории.
func (c Configuration) Get(cat Category) (Selection, error) {
	switch cat {
	case CategoryBase:
		return c.Base, nil
	case CategoryFrosting:
		return c.Frosting, nil
	case CategoryTopping:
		return c.Topping, nil
	}
	return Selection{}, ErrUnknownCategory
}

// With возвращает копию с перезаписанным слотом.
func (c Configuration) With(cat Category, s Selection) (Configuration, error) {
	switch cat {
	case CategoryBase:
		c.Base = s
	case CategoryFrosting:
		c.Frosting = s
	case CategoryTopping:
		c.Topping = s
	default:
		return c, ErrUnknownCategory
	}
	return c, nil
}

// FormatPrice — цена с двумя знаками после запятой
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
