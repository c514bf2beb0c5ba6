package customer

import "time"

// Customer is the saved visit history for a named guest. Walk-ins with
// an empty name are never recorded.
type Customer struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	VisitCount      int       `json:"visitCount"`
	LastVisit       time.Time `json:"lastVisit"`
	IsVIP           bool      `json:"isVip"`
	PreferredCastID *string   `json:"preferredCastId,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// Visit is one seated guest as seen by the seating flow.
type Visit struct {
	Name         string
	IsVIP        bool
	ShimeiCastID string
}
