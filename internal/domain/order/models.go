package order

import "time"

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Guest is one seated customer. An empty name is a walk-in; ShimeiCastID
// is the nominated cast, and IsDouhan marks a companion outing that
// arrived escorted by that cast.
type Guest struct {
	Name         string `json:"name"`
	ShimeiCastID string `json:"shimeiCastId,omitempty"`
	IsVIP        bool   `json:"isVip,omitempty"`
	IsDouhan     bool   `json:"isDouhan,omitempty"`
}

// Line is one ordered item. UnitPrice is frozen at add time; later menu
// price edits never reach historical bills. Lines are keyed by
// (MenuItemID, BackCastID) so the same item backed to different casts
// stays distinct.
type Line struct {
	MenuItemID string  `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	BackCastID string  `json:"backCastId,omitempty"`
}

// DouhanBack is the commission owed to a cast for escorting one
// companion guest. Multiple guests nominating the same cast each yield
// their own entry; they are deliberately not merged.
type DouhanBack struct {
	CastID string  `json:"castId"`
	Amount float64 `json:"amount"`
}

// Totals is the priced view of an order. Intermediates are kept
// unrounded; whole-yen rounding happens only when a value is displayed
// or exported.
type Totals struct {
	ItemsTotal     float64      `json:"itemsTotal"`
	SetFeeTotal    float64      `json:"setFeeTotal"`
	DouhanTotal    float64      `json:"douhanTotal"`
	DouhanBacks    []DouhanBack `json:"douhanBacks"`
	ServiceFee     float64      `json:"serviceFee"`
	Tax            float64      `json:"tax"`
	Total          float64      `json:"total"`
	ElapsedMinutes int          `json:"elapsedMinutes"`
	BilledHours    int          `json:"billedHours"`
}

type Order struct {
	ID        string     `json:"id"`
	TableID   string     `json:"tableId"`
	Guests    []Guest    `json:"guests"`
	Notes     string     `json:"notes,omitempty"`
	Lines     []Line     `json:"lines"`
	Totals    Totals     `json:"totals"`
	Status    string     `json:"status"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}
