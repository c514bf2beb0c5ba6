package cast

// Cast is a staff member attending guests. HourlyWage feeds the wage
// engine; inactive casts are kept for historical reports but excluded
// from new shifts and performance tables.
type Cast struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	HourlyWage float64 `json:"hourlyWage"`
	IsActive   bool    `json:"isActive"`
}
