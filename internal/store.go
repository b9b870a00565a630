package internal

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/DrGermanius/Zencoo/internal/model"
)

// OrderStore owns the placed and received orders of the current user. Each
// collection is kept as an id -> order map plus the ids in ingestion order.
// Listeners registered with Subscribe are called after every change.
type OrderStore struct {
	mu          sync.RWMutex
	placed      map[string]*model.PlacedOrder
	placedIDs   []string
	received    map[string]*model.ReceivedOrder
	receivedIDs []string

	listeners []func()
	logger    *zap.SugaredLogger
}

func NewOrderStore(placed []model.PlacedOrder, received []model.ReceivedOrder, logger *zap.SugaredLogger) (*OrderStore, error) {
	s := &OrderStore{
		placed:   make(map[string]*model.PlacedOrder, len(placed)),
		received: make(map[string]*model.ReceivedOrder, len(received)),
		logger:   logger,
	}

	for i := range placed {
		o := placed[i]
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, ok := s.placed[o.ID]; ok {
			return nil, fmt.Errorf("%w: placed %s", ErrDuplicateOrder, o.ID)
		}
		s.placed[o.ID] = &o
		s.placedIDs = append(s.placedIDs, o.ID)
	}

	for i := range received {
		o := received[i]
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, ok := s.received[o.ID]; ok {
			return nil, fmt.Errorf("%w: received %s", ErrDuplicateOrder, o.ID)
		}
		s.received[o.ID] = &o
		s.receivedIDs = append(s.receivedIDs, o.ID)
	}

	return s, nil
}

// Subscribe registers fn to be called after each successful mutation. fn is
// called without the store lock held, so it may read the store.
func (s *OrderStore) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// UpdateStatus moves a received order to status. The move must be allowed by
// the transition table; setting the current status again changes nothing.
func (s *OrderStore) UpdateStatus(orderID string, status model.Status) error {
	s.mu.Lock()
	o, ok := s.received[orderID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if o.Status == status {
		s.mu.Unlock()
		return nil
	}
	if !model.CanTransition(o.Status, status) {
		from := o.Status
		s.mu.Unlock()
		return fmt.Errorf("%w: %s %s -> %s", ErrIllegalTransition, orderID, from, status)
	}

	from := o.Status
	o.Status = status
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	s.logger.Infof("Order %s status changed: %s -> %s", orderID, from, status)
	notify(listeners)
	return nil
}

// CancelPlacedOrder drops a pending placed order from the placed collection.
func (s *OrderStore) CancelPlacedOrder(orderID string) error {
	s.mu.Lock()
	o, ok := s.placed[orderID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if o.Status != model.StatusPending {
		st := o.Status
		s.mu.Unlock()
		return fmt.Errorf("%w: %s is %s", ErrIllegalTransition, orderID, st)
	}

	delete(s.placed, orderID)
	for i, id := range s.placedIDs {
		if id == orderID {
			s.placedIDs = append(s.placedIDs[:i], s.placedIDs[i+1:]...)
			break
		}
	}
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	s.logger.Infof("Placed order %s cancelled", orderID)
	notify(listeners)
	return nil
}

// Placed returns a copy of the placed orders in ingestion order.
func (s *OrderStore) Placed() []model.PlacedOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]model.PlacedOrder, 0, len(s.placedIDs))
	for _, id := range s.placedIDs {
		orders = append(orders, *s.placed[id])
	}
	return orders
}

// Received returns a copy of the received orders in ingestion order.
func (s *OrderStore) Received() []model.ReceivedOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]model.ReceivedOrder, 0, len(s.receivedIDs))
	for _, id := range s.receivedIDs {
		orders = append(orders, *s.received[id])
	}
	return orders
}

func (s *OrderStore) GetReceived(orderID string) (model.ReceivedOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.received[orderID]
	if !ok {
		return model.ReceivedOrder{}, false
	}
	return *o, true
}

func (s *OrderStore) GetPlaced(orderID string) (model.PlacedOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.placed[orderID]
	if !ok {
		return model.PlacedOrder{}, false
	}
	return *o, true
}

func (s *OrderStore) snapshotListeners() []func() {
	l := make([]func(), len(s.listeners))
	copy(l, s.listeners)
	return l
}

func notify(listeners []func()) {
	for _, fn := range listeners {
		fn()
	}
}
