package order

import (
	"context"
	"time"

	"clubpos/internal/domain/customer"
	"clubpos/internal/domain/menu"
	"clubpos/internal/domain/settings"
	"clubpos/internal/domain/table"
)

// Service owns the order lifecycle: seat a party, mutate lines with a
// recompute on every change, and finish with checkout or cancel. Totals
// are only ever written by the pricing engine.
type Service struct {
	Orders    *Store
	Tables    *table.Store
	Menu      *menu.Store
	Settings  *settings.Store
	Customers *customer.Store
}

func NewService(orders *Store, tables *table.Store, menuStore *menu.Store, settingsStore *settings.Store, customers *customer.Store) *Service {
	return &Service{Orders: orders, Tables: tables, Menu: menuStore, Settings: settingsStore, Customers: customers}
}

// Open seats a party at a table and creates its active order with
// initial totals. Named guests are recorded into the visit history.
func (s *Service) Open(ctx context.Context, tableID string, guests []Guest, notes string, now time.Time) (Order, error) {
	if len(guests) == 0 {
		return Order{}, ErrEmptyGuestList
	}

	seat, err := s.Tables.Get(ctx, tableID)
	if err != nil {
		return Order{}, err
	}
	if seat.Status != table.StatusAvailable && seat.Status != table.StatusReserved {
		return Order{}, table.ErrNotAvailable
	}

	current, err := s.Settings.Get(ctx)
	if err != nil {
		return Order{}, err
	}

	o := Order{
		TableID:   tableID,
		Guests:    guests,
		Notes:     notes,
		Lines:     []Line{},
		Status:    StatusActive,
		StartTime: now,
	}
	o.Totals = ComputeTotals(o.Lines, o.Guests, o.StartTime, now, current)

	created, err := s.Orders.Create(ctx, o)
	if err != nil {
		return Order{}, err
	}

	if err := s.Tables.Seat(ctx, tableID, created.ID); err != nil {
		return Order{}, err
	}

	visits := make([]customer.Visit, 0, len(guests))
	for _, guest := range guests {
		visits = append(visits, customer.Visit{
			Name:         guest.Name,
			IsVIP:        guest.IsVIP,
			ShimeiCastID: guest.ShimeiCastID,
		})
	}
	if err := s.Customers.RecordVisits(ctx, visits, now); err != nil {
		return Order{}, err
	}

	return created, nil
}

// AddItem appends one unit of a menu item to an active order. The menu
// price is snapshotted onto the line; items carrying a back rate require
// an explicit cast decision (an empty backCastID on such an item is the
// explicit "no back" choice, made by the caller), while items without a
// back rate reject any cast.
func (s *Service) AddItem(ctx context.Context, orderID, menuItemID, backCastID string, now time.Time) (Order, error) {
	o, err := s.activeOrder(ctx, orderID)
	if err != nil {
		return Order{}, err
	}

	item, err := s.Menu.GetItem(ctx, menuItemID)
	if err != nil {
		return Order{}, err
	}
	if !item.IsAvailable {
		return Order{}, ErrUnavailable
	}
	if backCastID != "" && !item.HasBack() {
		return Order{}, ErrItemNoBack
	}

	o.Lines = AddLine(o.Lines, item.ID, item.Price, backCastID)
	return s.recompute(ctx, o, now)
}

// RemoveItem takes one unit off the line keyed by (menuItemID,
// backCastID); the line disappears when its quantity reaches zero.
func (s *Service) RemoveItem(ctx context.Context, orderID, menuItemID, backCastID string, now time.Time) (Order, error) {
	o, err := s.activeOrder(ctx, orderID)
	if err != nil {
		return Order{}, err
	}

	found := false
	for _, line := range o.Lines {
		if line.MenuItemID == menuItemID && line.BackCastID == backCastID {
			found = true
			break
		}
	}
	if !found {
		return Order{}, ErrLineNotFound
	}

	o.Lines = RemoveLine(o.Lines, menuItemID, backCastID)
	return s.recompute(ctx, o, now)
}

// Recompute refreshes an active order's totals against the current
// clock, for live views that poll the running bill.
func (s *Service) Recompute(ctx context.Context, orderID string, now time.Time) (Order, error) {
	o, err := s.activeOrder(ctx, orderID)
	if err != nil {
		return Order{}, err
	}
	return s.recompute(ctx, o, now)
}

// Checkout freezes the bill at the checkout instant, completes the
// order, and releases the table.
func (s *Service) Checkout(ctx context.Context, orderID string, now time.Time) (Order, error) {
	o, err := s.activeOrder(ctx, orderID)
	if err != nil {
		return Order{}, err
	}

	current, err := s.Settings.Get(ctx)
	if err != nil {
		return Order{}, err
	}

	o.Totals = ComputeTotals(o.Lines, o.Guests, o.StartTime, now, current)
	o.Status = StatusCompleted
	o.EndTime = &now
	if err := s.Orders.Update(ctx, o); err != nil {
		return Order{}, err
	}
	if err := s.Tables.Release(ctx, o.TableID); err != nil {
		return Order{}, err
	}
	return o, nil
}

// Cancel voids an active order and releases the table. Cancelled orders
// are excluded from all reporting.
func (s *Service) Cancel(ctx context.Context, orderID string) (Order, error) {
	o, err := s.activeOrder(ctx, orderID)
	if err != nil {
		return Order{}, err
	}

	o.Status = StatusCancelled
	if err := s.Orders.Update(ctx, o); err != nil {
		return Order{}, err
	}
	if err := s.Tables.Release(ctx, o.TableID); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (s *Service) activeOrder(ctx context.Context, orderID string) (Order, error) {
	o, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return Order{}, err
	}
	if o.Status != StatusActive {
		return Order{}, ErrNotActive
	}
	return o, nil
}

func (s *Service) recompute(ctx context.Context, o Order, now time.Time) (Order, error) {
	current, err := s.Settings.Get(ctx)
	if err != nil {
		return Order{}, err
	}
	o.Totals = ComputeTotals(o.Lines, o.Guests, o.StartTime, now, current)
	if err := s.Orders.Update(ctx, o); err != nil {
		return Order{}, err
	}
	return o, nil
}
