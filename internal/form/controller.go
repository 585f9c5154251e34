// Package form mediates between raw user input and the ledger. Input
// arrives as discrete messages of raw field strings, display updates leave
// as discrete messages carrying the recomputed aggregate; the controller
// knows nothing about any particular widget toolkit.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/denikks/huntbook/internal/calc"
	"github.com/denikks/huntbook/internal/model"
)

// State is the controller's position in the submission cycle.
type State string

const (
	StateIdle       State = "idle"
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
)

// Input is one submission message: raw field strings as typed.
type Input struct {
	Label    string
	Amount   string
	Category string
}

// Display is one update message pushed to the display callback after every
// successful mutation.
type Display struct {
	Aggregate calc.Aggregate
	EMFLevel  int
	Count     int
}

// FieldError reports a validation failure on a single input field. The
// store is never contacted for a submission that fails validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

// Appender is the slice of the ledger Store the controller mutates through.
type Appender interface {
	Append(model.Entry) (model.Entry, error)
	Session() model.Session
}

// Controller validates submissions and drives the store and calculator.
// It processes one submission at a time; a Submit arriving while a prior
// one is in flight is ignored.
type Controller struct {
	store      Appender
	thresholds calc.EMFThresholds
	notify     func(Display)
	state      State
}

// NewController creates a Controller in the Idle state. notify may be nil
// when no display is attached.
func NewController(store Appender, thresholds calc.EMFThresholds, notify func(Display)) *Controller {
	if notify == nil {
		notify = func(Display) {}
	}
	return &Controller{store: store, thresholds: thresholds, notify: notify, state: StateIdle}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Edit marks the form as being typed into. Safe to call repeatedly.
func (c *Controller) Edit() {
	if c.state == StateIdle {
		c.state = StateEditing
	}
}

// ErrBusy is returned when a submission arrives while another is in flight.
var ErrBusy = errors.New("submission already in progress")

// Submit validates the input, appends to the store, and pushes the
// recomputed aggregate to the display. On a validation failure the
// controller stays in Editing and the store is untouched; on a storage
// failure the prior persisted state is retained and the error surfaces as
// a non-fatal warning to the caller.
func (c *Controller) Submit(in Input) (model.Entry, error) {
	if c.state == StateSubmitting {
		return model.Entry{}, ErrBusy
	}

	entry, verr := parse(in)
	if verr != nil {
		c.state = StateEditing
		return model.Entry{}, verr
	}

	c.state = StateSubmitting
	defer func() { c.state = StateIdle }()

	stored, err := c.store.Append(entry)
	if err != nil {
		return model.Entry{}, fmt.Errorf("recording entry: %w", err)
	}

	c.publish()
	return stored, nil
}

// Refresh recomputes the aggregate from the current session and pushes a
// display update without mutating anything.
func (c *Controller) Refresh() {
	c.publish()
}

func (c *Controller) publish() {
	session := c.store.Session()
	agg := calc.Aggregates(session)
	c.notify(Display{
		Aggregate: agg,
		EMFLevel:  calc.EMFLevel(agg.Total, c.thresholds),
		Count:     session.Len(),
	})
}

// parse validates raw fields and builds the entry to record.
func parse(in Input) (model.Entry, *FieldError) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return model.Entry{}, &FieldError{Field: "label", Reason: "must not be empty"}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	if err != nil {
		return model.Entry{}, &FieldError{Field: "amount", Reason: "must be a number"}
	}

	category := model.Category(strings.TrimSpace(strings.ToLower(in.Category)))
	if category == "" {
		category = model.CategoryMisc
	}

	return model.Entry{Label: label, Category: category, Amount: amount}, nil
}
