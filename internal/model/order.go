package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOrder  = errors.New("invalid order")
	ErrUnknownStatus = errors.New("unknown order status")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// legacyStatuses maps the buyer-side vocabulary of older clients onto Status.
var legacyStatuses = map[string]Status{
	"PENDING":   StatusPending,
	"ACCEPTED":  StatusAccepted,
	"REJECTED":  StatusRejected,
	"DELIVERED": StatusCompleted,
	"COMPLETED": StatusCompleted,
	"CANCELLED": StatusCancelled,
	"CANCELED":  StatusCancelled,
}

var validNext = map[Status]map[Status]bool{
	StatusPending:   {StatusAccepted: true, StatusRejected: true},
	StatusAccepted:  {StatusCompleted: true, StatusCancelled: true},
	StatusRejected:  {},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseStatus accepts both the upper-case statuses and the mixed-case buyer
// statuses ("Pending", "Delivered", ...). An empty string is PENDING.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusPending, nil
	}

	st, ok := legacyStatuses[strings.ToUpper(s)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	_, ok := validNext[s]
	return ok
}

func (s Status) IsTerminal() bool {
	next, ok := validNext[s]
	return ok && len(next) == 0
}

// Rank orders statuses for the received list: actionable ones first.
func (s Status) Rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusAccepted:
		return 1
	default:
		return 2
	}
}

func (s *Status) UnmarshalText(text []byte) error {
	st, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

type Action string

const (
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

var actionTargets = map[Action]Status{
	ActionAccept:   StatusAccepted,
	ActionReject:   StatusRejected,
	ActionComplete: StatusCompleted,
	ActionCancel:   StatusCancelled,
}

// Target returns the status a received order moves to when the seller
// performs the action.
func (a Action) Target() (Status, bool) {
	st, ok := actionTargets[a]
	return st, ok
}

// ReceivedActions lists the seller actions offered for an order in status s.
func ReceivedActions(s Status) []Action {
	switch s {
	case StatusPending:
		return []Action{ActionAccept, ActionReject}
	case StatusAccepted:
		return []Action{ActionComplete, ActionCancel}
	default:
		return []Action{}
	}
}

// Order is implemented by PlacedOrder and ReceivedOrder only.
type Order interface {
	OrderID() string
	OrderStatus() Status
	isOrder()
}

type ReceivedOrder struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Note         string          `json:"note,omitempty"`
	Timestamp    Timestamp       `json:"timestamp"`
	ReceivedAt   Timestamp       `json:"receivedAt"`
	Status       Status          `json:"status"`
}

func (o ReceivedOrder) OrderID() string     { return o.ID }
func (o ReceivedOrder) OrderStatus() Status { return o.Status }
func (ReceivedOrder) isOrder()              {}

// Validate checks a received order coming from outside the process. A missing
// receivedAt is taken from timestamp.
func (o *ReceivedOrder) Validate() error {
	if o.ReceivedAt.IsZero() {
		o.ReceivedAt = o.Timestamp
	}
	if o.Status == "" {
		o.Status = StatusPending
	}

	switch {
	case strings.TrimSpace(o.ID) == "":
		return fmt.Errorf("%w: empty id", ErrInvalidOrder)
	case o.CustomerID == "" || o.CustomerName == "":
		return fmt.Errorf("%w %s: customer is required", ErrInvalidOrder, o.ID)
	case o.ProductName == "":
		return fmt.Errorf("%w %s: product name is required", ErrInvalidOrder, o.ID)
	case !o.Quantity.IsPositive():
		return fmt.Errorf("%w %s: quantity must be positive", ErrInvalidOrder, o.ID)
	case o.ReceivedAt.IsZero():
		return fmt.Errorf("%w %s: receivedAt is required", ErrInvalidOrder, o.ID)
	case !o.Status.IsValid():
		return fmt.Errorf("%w %s: unknown status %q", ErrInvalidOrder, o.ID, o.Status)
	}
	return nil
}

type PlacedOrder struct {
	ID           string          `json:"id"`
	SellerID     string          `json:"sellerId"`
	SellerName   string          `json:"sellerName"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Timestamp    Timestamp       `json:"timestamp"`
	PlacedAt     Timestamp       `json:"placedAt"`
	Status       Status          `json:"status"`
}

func (o PlacedOrder) OrderID() string     { return o.ID }
func (o PlacedOrder) OrderStatus() Status { return o.Status }
func (PlacedOrder) isOrder()              {}

// Validate checks a placed order coming from outside the process. A missing
// placedAt is taken from timestamp.
func (o *PlacedOrder) Validate() error {
	if o.PlacedAt.IsZero() {
		o.PlacedAt = o.Timestamp
	}
	if o.Status == "" {
		o.Status = StatusPending
	}

	switch {
	case strings.TrimSpace(o.ID) == "":
		return fmt.Errorf("%w: empty id", ErrInvalidOrder)
	case o.SellerID == "" || o.SellerName == "":
		return fmt.Errorf("%w %s: seller is required", ErrInvalidOrder, o.ID)
	case o.ProductName == "":
		return fmt.Errorf("%w %s: product name is required", ErrInvalidOrder, o.ID)
	case !o.Quantity.IsPositive():
		return fmt.Errorf("%w %s: quantity must be positive", ErrInvalidOrder, o.ID)
	case o.PlacedAt.IsZero():
		return fmt.Errorf("%w %s: placedAt is required", ErrInvalidOrder, o.ID)
	case !o.Status.IsValid():
		return fmt.Errorf("%w %s: unknown status %q", ErrInvalidOrder, o.ID, o.Status)
	}
	return nil
}

// ReceivedOrderOutput is a received order as shown to the seller, with the
// actions currently available on it.
type ReceivedOrderOutput struct {
	ReceivedOrder
	Actions []Action `json:"actions"`
}

type PlacedOrderOutput struct {
	PlacedOrder
	Cancellable bool `json:"cancellable"`
}
