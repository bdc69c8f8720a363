package resourceform

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"resource-form/internal/domain/resource"
	"resource-form/internal/infra"
	"resource-form/internal/pkg/errs"
)

const (
	msgFormInvalid = "Please fix the highlighted fields before submitting."
	msgSaved       = "Resource saved successfully (response received)."
	msgNetwork     = "Network or server error - please try again."
)

type SubmitState string

const (
	StateIdle       SubmitState = "idle"
	StateSubmitting SubmitState = "submitting"
	StateDone       SubmitState = "done"
)

// FormPort is the part of a form the submitter drives.
type FormPort interface {
	Capability
	Hold(action resource.Action) (draft resource.Draft, release func(), err error)
}

// Result describes a submission that reached the network. Err is set when the
// echo service answered with an error status or could not be reached.
type Result struct {
	Payload Payload
	Echo    *EchoResponse
	Message Message
	Err     error
}

type Submitter struct {
	form   FormPort
	client EchoClient
	logger *slog.Logger

	mu    sync.Mutex
	state SubmitState
}

func NewSubmitter(form FormPort, client EchoClient, logger *slog.Logger) *Submitter {
	return &Submitter{
		form:   form,
		client: client,
		logger: logger,
		state:  StateIdle,
	}
}

func (s *Submitter) State() SubmitState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit sends the form once. Refusals before any request is made are returned as
// errors (ErrFormInvalid, ErrSubmissionInFlight, ErrActionUnavailable); delivery
// failures are reported through Result and the form's message.
func (s *Submitter) Submit(ctx context.Context, action resource.Action) (*Result, error) {
	if !s.form.CheckValidity() {
		return nil, s.refuseInvalid(action)
	}

	prev, ok := s.begin()
	if !ok {
		return nil, errs.ErrSubmissionInFlight
	}

	draft, release, err := s.form.Hold(action)
	if err != nil {
		s.transition(prev)
		if errs.Is(err, errs.ErrFormInvalid) {
			return nil, s.refuseInvalid(action)
		}
		return nil, err
	}
	defer release()

	payload, err := NewPayload(action, draft)
	if err != nil {
		s.transition(prev)
		return nil, err
	}

	s.logger.Info("sending payload to echo endpoint", slog.Group("payload",
		"action", string(payload.Action),
		"resourceName", payload.ResourceName,
		"resourceDescription", payload.ResourceDescription,
		"resourceAvailable", payload.ResourceAvailable,
		"resourcePrice", payload.ResourcePrice,
		"resourcePriceUnit", string(payload.ResourcePriceUnit),
	))

	echo, err := s.client.Post(ctx, payload)
	result := s.settle(payload, echo, err)
	s.form.ShowMessage(result.Message.Kind, result.Message.Text)
	s.transition(StateDone)

	return result, nil
}

func (s *Submitter) refuseInvalid(action resource.Action) error {
	s.logger.Warn("form invalid, aborting submit", "action", string(action))
	s.form.ShowMessage(MessageError, msgFormInvalid)
	return errs.ErrFormInvalid
}

func (s *Submitter) settle(payload Payload, echo *EchoResponse, err error) *Result {
	if err == nil {
		s.logger.Info("response from echo endpoint", slog.Group("echo",
			"status", echo.StatusCode,
			"url", echo.URL,
			"json", string(echo.JSON),
			"headers", echo.Headers,
		))
		return &Result{
			Payload: payload,
			Echo:    echo,
			Message: Message{Kind: MessageSuccess, Text: msgSaved},
		}
	}

	var clientErr *infra.ClientError
	if errors.As(err, &clientErr) && clientErr.Kind == infra.KindServerError {
		text := "Server error: " + clientErr.Status
		if clientErr.Body != "" {
			text += " - " + clientErr.Body
		}
		s.logger.Error(text)
		return &Result{
			Payload: payload,
			Message: Message{Kind: MessageError, Text: text},
			Err:     err,
		}
	}

	s.logger.Error("POST error", "error", err)
	if !errs.Is(err, errs.ErrNetwork) {
		err = errs.Mark(errs.Wrap(err, "echo request failed"), errs.ErrNetwork)
	}
	return &Result{
		Payload: payload,
		Message: Message{Kind: MessageError, Text: msgNetwork},
		Err:     err,
	}
}

func (s *Submitter) begin() (SubmitState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting {
		return s.state, false
	}
	prev := s.state
	s.state = StateSubmitting
	return prev, true
}

func (s *Submitter) transition(to SubmitState) {
	s.mu.Lock()
	s.state = to
	s.mu.Unlock()
}
