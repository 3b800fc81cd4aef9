package domain

// View — то, что видит пользователь после очередного события
type View struct {
	Cookie      Configuration       `json:"cookie"`
	Key         string              `json:"key"`
	Background  string              `json:"background"` // "" = background-image: none
	FaceVisible bool                `json:"faceVisible"`
	Total       float64             `json:"total"`
	Price       string              `json:"price"`
	Selected    map[Category]string `json:"selected"` // категория -> id подсвеченной кнопки
}

// Render переводит состояние и найденную картинку в View.
func Render(c Configuration, res Resolution, selected map[Category]string) View {
	v := View{
		Cookie:   c,
		Key:      res.Key,
		Total:    c.TotalCost(),
		Price:    FormatPrice(c.TotalCost()),
		Selected: make(map[Category]string, len(selected)),
	}
	if res.Found {
		v.Background = res.Path
		v.FaceVisible = true
	}
	for k, id := range selected {
		v.Selected[k] = id
	}
	return v
}

// IsSelected — подсвечена ли кнопка
func (v View) IsSelected(cat Category, id string) bool {
	sel, ok := v.Selected[cat]
	return ok && sel == id
}
