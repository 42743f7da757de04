// Package contact simulates the "save score" message form: fields are
// validated in the input layer, then a submission is held for a fixed delay
// and acknowledged locally. Nothing leaves the process.
package contact

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/automoto/arcade-portfolio/logger"
	"github.com/automoto/arcade-portfolio/sound"
)

// State is the form's submission state.
type State int

const (
	Editing State = iota
	Submitting
	Submitted
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	}
	return "unknown"
}

// Field names a form input.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
)

var fieldNames = map[Field]string{
	FieldName:    "name",
	FieldEmail:   "email",
	FieldMessage: "message",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// Fields are the editable values.
type Fields struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}

var (
	// ErrBusy is returned by Submit while a submission is in flight.
	ErrBusy = errors.New("submission in progress")
	// ErrAlreadySubmitted is returned by Submit after the form was sent.
	ErrAlreadySubmitted = errors.New("form already submitted")
)

// DefaultDelay is the simulated submission latency in seconds.
const DefaultDelay = 1.5

// Form is the contact form state machine. It is ticked by the game loop.
type Form struct {
	fields  Fields
	state   State
	delay   float64
	waited  float64
	receipt string
	cues    sound.Service
	log     zerolog.Logger
}

// NewForm returns an empty form in the editing state. cues may be nil.
func NewForm(cues sound.Service, delay float64) *Form {
	return &Form{
		cues:  cues,
		delay: delay,
		log:   logger.GetLogger("contact"),
	}
}

// State returns the current state.
func (f *Form) State() State {
	return f.state
}

// Fields returns a copy of the current values.
func (f *Form) Fields() Fields {
	return f.fields
}

// Receipt returns the id assigned on submission, or "".
func (f *Form) Receipt() string {
	return f.receipt
}

// SetField replaces a field's value while editing. Changing a value plays the
// typing cue. It reports whether the value was accepted.
func (f *Form) SetField(field Field, value string) bool {
	if f.state != Editing {
		return false
	}

	var dst *string
	switch field {
	case FieldName:
		dst = &f.fields.Name
	case FieldEmail:
		dst = &f.fields.Email
	case FieldMessage:
		dst = &f.fields.Message
	default:
		return false
	}

	if *dst == value {
		return true
	}
	*dst = value
	sound.Cues.Play(f.cues, sound.CueType)
	return true
}

// Submit validates the fields and begins the simulated submission.
// Validation errors are returned as ValidationError and leave the form
// editing.
func (f *Form) Submit() error {
	switch f.state {
	case Submitting:
		return ErrBusy
	case Submitted:
		return ErrAlreadySubmitted
	}

	if err := Validate(f.fields); err != nil {
		return err
	}

	f.state = Submitting
	f.waited = 0
	f.log.Debug().Msg("submitting")
	return nil
}

// Update advances the submission timer by dt seconds.
func (f *Form) Update(dt float64) {
	if f.state != Submitting {
		return
	}
	f.waited += dt
	if f.waited < f.delay {
		return
	}

	f.state = Submitted
	f.fields = Fields{}
	f.receipt = uuid.NewString()
	sound.Cues.Play(f.cues, sound.CueSuccess)
	f.log.Info().Str("receipt", f.receipt).Msg("score saved")
}

// CanSubmit reports whether the submit control should be enabled.
func (f *Form) CanSubmit() bool {
	return f.state == Editing
}

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields map[Field]string // field -> failed rule
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, fld := range []Field{FieldName, FieldEmail, FieldMessage} {
		if rule, ok := e.Fields[fld]; ok {
			parts = append(parts, fld.String()+" "+rule)
		}
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

// Has reports whether field failed.
func (e *ValidationError) Has(field Field) bool {
	_, ok := e.Fields[field]
	return ok
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks required fields and email syntax.
func Validate(fields Fields) error {
	trimmed := Fields{
		Name:    strings.TrimSpace(fields.Name),
		Email:   strings.TrimSpace(fields.Email),
		Message: strings.TrimSpace(fields.Message),
	}

	err := validate.Struct(trimmed)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[Field]string)}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			out.Fields[FieldName] = fe.Tag()
		case "Email":
			out.Fields[FieldEmail] = fe.Tag()
		case "Message":
			out.Fields[FieldMessage] = fe.Tag()
		}
	}
	return out
}
