package table

// Table is a physical seat group. CurrentOrderID is a display cache of
// the active order; the order record is the owner of the relationship.
type Table struct {
	ID             string  `json:"id"`
	Number         int     `json:"number"`
	Seats          int     `json:"seats"`
	Status         string  `json:"status"`
	CurrentOrderID *string `json:"currentOrderId,omitempty"`
}

const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
	StatusReserved  = "reserved"
	StatusCleaning  = "cleaning"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusAvailable, StatusOccupied, StatusReserved, StatusCleaning:
		return true
	}
	return false
}
