package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Ingredient описывает одну кнопку выбора (data-type / data-name / data-id / data-cost)
type Ingredient struct {
	Category Category `json:"type" yaml:"type"`
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Cost     float64  `json:"cost" yaml:"cost"`
	Order    int      `json:"order" yaml:"order"`
}

// Selection — то, что кнопка кладёт в слот
func (i Ingredient) Selection() Selection {
	return Selection{Name: i.Name, ID: i.ID, Cost: i.Cost}
}

// Catalog — все кнопки конфигуратора
type Catalog struct {
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// DefaultCatalog возвращает стартовый набор кнопок
func DefaultCatalog() *Catalog {
	return &Catalog{
		Ingredients: []Ingredient{
			{Category: CategoryBase, ID: "redvelvet", Name: "Red Velvet", Cost: 3.00, Order: 1},
			{Category: CategoryBase, ID: "matcha", Name: "Matcha", Cost: 3.25, Order: 2},
			{Category: CategoryBase, ID: "chocolate", Name: "Chocolate", Cost: 2.50, Order: 3},
			{Category: CategoryBase, ID: "vanilla", Name: "Vanilla", Cost: 2.00, Order: 4},

			{Category: CategoryFrosting, ID: NoneID, Name: NoneName, Cost: 0, Order: 1},
			{Category: CategoryFrosting, ID: "pinkicing", Name: "Pink Icing", Cost: 0.75, Order: 2},
			{Category: CategoryFrosting, ID: "whitecream", Name: "White Cream", Cost: 1.00, Order: 3},

			{Category: CategoryTopping, ID: NoneID, Name: NoneName, Cost: 0, Order: 1},
			{Category: CategoryTopping, ID: "sprinkles", Name: "Sprinkles", Cost: 0.50, Order: 2},
			{Category: CategoryTopping, ID: "drizzle", Name: "Drizzle", Cost: 0.60, Order: 3},
		},
	}
}

// Find ищет кнопку по категории и id
func (c *Catalog) Find(cat Category, id string) (Ingredient, error) {
	if _, err := ParseCategory(string(cat)); err != nil {
		return Ingredient{}, err
	}
	for _, i := range c.Ingredients {
		if i.Category == cat && i.ID == id {
			return i, nil
		}
	}
	return Ingredient{}, ErrUnknownIngredient
}

// ByCategory — кнопки одной группы, по Order
func (c *Catalog) ByCategory(cat Category) []Ingredient {
	out := make([]Ingredient, 0)
	for _, i := range c.Ingredients {
		if i.Category == cat {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Order < out[b].Order })
	return out
}

// IDs возвращает id группы. "none" есть всегда: это стартовое значение слота.
func (c *Catalog) IDs(cat Category) []string {
	ids := []string{NoneID}
	for _, i := range c.ByCategory(cat) {
		if i.ID != NoneID {
			ids = append(ids, i.ID)
		}
	}
	return ids
}

// ValidateCatalog проверяет кнопки до старта сервера.
func ValidateCatalog(c *Catalog) error {
	var errs []string
	seen := make(map[string]bool)
	for i, ing := range c.Ingredients {
		if _, err := ParseCategory(string(ing.Category)); err != nil {
			errs = append(errs, fmt.Sprintf("ingredients[%d]: unknown type %q", i, ing.Category))
			continue
		}
		switch {
		case ing.ID == "":
			errs = append(errs, fmt.Sprintf("ingredients[%d]: empty id", i))
		case strings.Contains(ing.ID, keySep):
			errs = append(errs, fmt.Sprintf("ingredients[%d]: id %q must not contain %q", i, ing.ID, keySep))
		case ing.Category == CategoryBase && ing.ID == NoneID:
			errs = append(errs, fmt.Sprintf("ingredients[%d]: base cannot be %q", i, NoneID))
		}
		if ing.Name == "" {
			errs = append(errs, fmt.Sprintf("ingredients[%d]: empty name", i))
		}
		if ing.Cost < 0 {
			errs = append(errs, fmt.Sprintf("ingredients[%d]: cost must be >= 0", i))
		}
		k := string(ing.Category) + "/" + ing.ID
		if seen[k] {
			errs = append(errs, fmt.Sprintf("ingredients[%d]: duplicate %s", i, k))
		}
		seen[k] = true
	}
	if len(c.IDs(CategoryBase)) < 2 {
		errs = append(errs, "catalog has no base")
	}
	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
