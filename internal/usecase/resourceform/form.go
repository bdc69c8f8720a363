package resourceform

import (
	"sync"

	"resource-form/internal/domain/resource"
	"resource-form/internal/pkg/errs"
)

var ErrActionUnavailable = errs.New("action is not available on this form")

// Input carries the field values of one input or submit event. A nil field means
// the event did not include it and the last known value is kept.
type Input struct {
	Name        *string
	Description *string
	Available   *bool
	Price       *string
	PriceUnit   *string
}

type FieldSnapshot struct {
	Present bool
	Value   string
	State   resource.FieldState
	Hint    string
}

// Snapshot is the plain data handed to the presentation layer.
type Snapshot struct {
	Role        resource.Role
	Name        FieldSnapshot
	Description FieldSnapshot
	Available   bool
	Price       string
	PriceUnit   resource.PriceUnit
	Buttons     []resource.ActionButton
	Valid       bool
	Submitting  bool
	Message     *Message
}

type FormOption func(*Form)

// WithoutNameField builds the form without its name input.
func WithoutNameField() FormOption {
	return func(f *Form) { f.hasName = false }
}

// WithoutDescriptionField models a host page that lacks the description textarea.
func WithoutDescriptionField() FormOption {
	return func(f *Form) { f.hasDescription = false }
}

// Form is the state of one rendered resource form.
type Form struct {
	mu sync.RWMutex

	role           resource.Role
	hasName        bool
	hasDescription bool

	name        string
	description string
	available   bool
	price       string
	priceUnit   string

	buttons  []resource.ActionButton
	inFlight resource.Action
	message  *Message
}

func NewForm(role resource.Role, opts ...FormOption) *Form {
	f := &Form{
		role:           role,
		hasName:        true,
		hasDescription: true,
		priceUnit:      string(resource.PriceUnitHour),
		buttons:        resource.ButtonsFor(role),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.syncButtonsLocked()
	return f
}

// Apply records the values of an input event and recomputes button state before returning.
func (f *Form) Apply(in Input) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	if in.Name != nil && f.hasName {
		f.name = *in.Name
	}
	if in.Description != nil && f.hasDescription {
		f.description = *in.Description
	}
	if in.Available != nil {
		f.available = *in.Available
	}
	if in.Price != nil {
		f.price = *in.Price
	}
	if in.PriceUnit != nil && *in.PriceUnit != "" {
		f.priceUnit = *in.PriceUnit
	}

	f.syncButtonsLocked()
	return f.snapshotLocked()
}

func (f *Form) CheckValidity() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.validLocked()
}

func (f *Form) ShowMessage(kind MessageKind, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.message = &Message{Kind: kind, Text: text}
}

func (f *Form) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshotLocked()
}

func (f *Form) Draft() resource.Draft {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.draftLocked()
}

func (f *Form) draftLocked() resource.Draft {
	return resource.NewDraft(f.name, f.description, f.available, f.price, f.priceUnit)
}

// Hold disables the enabled submit control for action until release is called.
// The returned draft is read under the same lock as the validity check, so a
// concurrent Apply cannot change what gets sent.
func (f *Form) Hold(action resource.Action) (draft resource.Draft, release func(), err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inFlight != "" {
		return resource.Draft{}, nil, errs.ErrSubmissionInFlight
	}
	if !f.validLocked() {
		return resource.Draft{}, nil, errs.ErrFormInvalid
	}
	held := false
	for _, b := range f.buttons {
		if b.Action == action && b.Submit && b.Enabled {
			held = true
			break
		}
	}
	if !held {
		return resource.Draft{}, nil, ErrActionUnavailable
	}

	f.inFlight = action
	f.syncButtonsLocked()

	var once sync.Once
	return f.draftLocked(), func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.inFlight = ""
			f.syncButtonsLocked()
		})
	}, nil
}

func (f *Form) validLocked() bool {
	nameOK := f.hasName && resource.IsNameValid(f.name)
	descOK := f.hasDescription && resource.IsDescriptionValid(f.description)
	return nameOK && descOK
}

// Only submit-type controls are gated by validity; update and delete have no
// behaviour yet and stay disabled.
func (f *Form) syncButtonsLocked() {
	valid := f.validLocked()
	for i := range f.buttons {
		b := &f.buttons[i]
		b.Enabled = b.Submit && valid && f.inFlight == ""
	}
}

func (f *Form) snapshotLocked() Snapshot {
	buttons := make([]resource.ActionButton, len(f.buttons))
	copy(buttons, f.buttons)

	var msg *Message
	if f.message != nil {
		m := *f.message
		msg = &m
	}

	return Snapshot{
		Role:        f.role,
		Name:        fieldSnapshot(f.hasName, f.name, resource.NameState, nameHint),
		Description: fieldSnapshot(f.hasDescription, f.description, resource.DescriptionState, descriptionHint),
		Available:   f.available,
		Price:       f.price,
		PriceUnit:   resource.ParsePriceUnit(f.priceUnit),
		Buttons:     buttons,
		Valid:       f.validLocked(),
		Submitting:  f.inFlight != "",
		Message:     msg,
	}
}

func fieldSnapshot(present bool, value string, state func(string) resource.FieldState, hint func(string) string) FieldSnapshot {
	if !present {
		return FieldSnapshot{}
	}
	fs := FieldSnapshot{Present: true, Value: value, State: state(value)}
	if fs.State == resource.FieldInvalid {
		fs.Hint = hint(value)
	}
	return fs
}

func nameHint(v string) string {
	if _, err := resource.NewName(v); err != nil {
		return err.Error()
	}
	return ""
}

func descriptionHint(v string) string {
	if _, err := resource.NewDescription(v); err != nil {
		return err.Error()
	}
	return ""
}
