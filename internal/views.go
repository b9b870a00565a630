package internal

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/DrGermanius/Zencoo/internal/model"
)

const cancelOrderPrompt = "Are you sure you want to cancel this order?"

// Confirmer asks the user a yes/no question before a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// ProjectPlaced returns the orders newest first. Orders placed at the same
// time keep their relative order. The input is not modified.
func ProjectPlaced(orders []model.PlacedOrder) []model.PlacedOrder {
	sorted := make([]model.PlacedOrder, len(orders))
	copy(sorted, orders)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PlacedAt.After(sorted[j].PlacedAt.Time)
	})
	return sorted
}

// ProjectReceived puts pending orders first, then accepted ones, then the
// rest; inside each group the most recently received come first.
func ProjectReceived(orders []model.ReceivedOrder) []model.ReceivedOrder {
	sorted := make([]model.ReceivedOrder, len(orders))
	copy(sorted, orders)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Status.Rank(), sorted[j].Status.Rank()
		if ri != rj {
			return ri < rj
		}
		return sorted[i].ReceivedAt.After(sorted[j].ReceivedAt.Time)
	})
	return sorted
}

// CanCancel reports whether the buyer may still cancel the order.
func CanCancel(o model.PlacedOrder) bool {
	return o.Status == model.StatusPending
}

type PlacedView struct {
	store  *OrderStore
	logger *zap.SugaredLogger

	mu     sync.RWMutex
	orders []model.PlacedOrder
}

func NewPlacedView(store *OrderStore, logger *zap.SugaredLogger) *PlacedView {
	v := &PlacedView{store: store, logger: logger}
	v.refresh()
	store.Subscribe(v.refresh)
	return v
}

func (v *PlacedView) refresh() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.orders = ProjectPlaced(v.store.Placed())
}

func (v *PlacedView) Orders() []model.PlacedOrder {
	v.mu.RLock()
	defer v.mu.RUnlock()

	orders := make([]model.PlacedOrder, len(v.orders))
	copy(orders, v.orders)
	return orders
}

func (v *PlacedView) Output() []model.PlacedOrderOutput {
	orders := v.Orders()
	out := make([]model.PlacedOrderOutput, 0, len(orders))
	for _, o := range orders {
		out = append(out, model.PlacedOrderOutput{PlacedOrder: o, Cancellable: CanCancel(o)})
	}
	return out
}

// Cancel removes a pending placed order once the user has confirmed it.
func (v *PlacedView) Cancel(orderID string, c Confirmer) error {
	if !c.Confirm(cancelOrderPrompt) {
		v.logger.Infof("Cancellation of order %s declined", orderID)
		return ErrCancellationDeclined
	}
	return v.store.CancelPlacedOrder(orderID)
}

type ReceivedView struct {
	store  *OrderStore
	logger *zap.SugaredLogger

	mu     sync.RWMutex
	orders []model.ReceivedOrder
}

func NewReceivedView(store *OrderStore, logger *zap.SugaredLogger) *ReceivedView {
	v := &ReceivedView{store: store, logger: logger}
	v.refresh()
	store.Subscribe(v.refresh)
	return v
}

func (v *ReceivedView) refresh() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.orders = ProjectReceived(v.store.Received())
}

func (v *ReceivedView) Orders() []model.ReceivedOrder {
	v.mu.RLock()
	defer v.mu.RUnlock()

	orders := make([]model.ReceivedOrder, len(v.orders))
	copy(orders, v.orders)
	return orders
}

func (v *ReceivedView) Output() []model.ReceivedOrderOutput {
	orders := v.Orders()
	out := make([]model.ReceivedOrderOutput, 0, len(orders))
	for _, o := range orders {
		out = append(out, model.ReceivedOrderOutput{ReceivedOrder: o, Actions: model.ReceivedActions(o.Status)})
	}
	return out
}

func (v *ReceivedView) Accept(orderID string) error {
	return v.store.UpdateStatus(orderID, model.StatusAccepted)
}

func (v *ReceivedView) Reject(orderID string) error {
	return v.store.UpdateStatus(orderID, model.StatusRejected)
}

func (v *ReceivedView) Complete(orderID string) error {
	return v.store.UpdateStatus(orderID, model.StatusCompleted)
}

func (v *ReceivedView) Cancel(orderID string) error {
	return v.store.UpdateStatus(orderID, model.StatusCancelled)
}

// Apply performs a seller action by name and returns the updated order.
func (v *ReceivedView) Apply(orderID string, action model.Action) (model.ReceivedOrder, error) {
	status, ok := action.Target()
	if !ok {
		return model.ReceivedOrder{}, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err := v.store.UpdateStatus(orderID, status); err != nil {
		return model.ReceivedOrder{}, err
	}

	o, _ := v.store.GetReceived(orderID)
	return o, nil
}
