package menu

// Category groups items for display and reporting.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is a sellable menu entry. BackRate, when present, is the fraction
// (0-1) of the item price credited to a cast chosen at order time; nil
// means the item never carries a back. The live price here is only a
// template: order lines snapshot it at add time and never re-read it.
type Item struct {
	ID                string   `json:"id"`
	CategoryID        string   `json:"categoryId"`
	Name              string   `json:"name"`
	Price             float64  `json:"price"`
	Description       string   `json:"description,omitempty"`
	IsAvailable       bool     `json:"isAvailable"`
	IsSeasonalSpecial bool     `json:"isSeasonalSpecial,omitempty"`
	BackRate          *float64 `json:"backRate,omitempty"`
}

// HasBack reports whether ordering this item requires an explicit
// back-cast decision.
func (i Item) HasBack() bool {
	return i.BackRate != nil && *i.BackRate > 0
}
