package infra

import (
	"errors"
	"log/slog"

	"resource-form/internal/pkg/errs"
)

type ClientErrorKind string

// ClientError classifies a failed outbound call.
type ClientError struct {
	Kind       ClientErrorKind
	StatusCode int
	Status     string
	Body       string
	msg        string
	err        error // wrapped low-level error
}

func (e *ClientError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e *ClientError) Unwrap() error {
	return e.err
}

// Is lets callers match a ClientError against errs.ErrServerResponse or errs.ErrNetwork.
func (e *ClientError) Is(target error) bool {
	return target == markerFor(e.Kind)
}

func WrapClientErr(slogger *slog.Logger, kind ClientErrorKind, msg string, err error) error {
	slogger.Error("Client error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return &ClientError{Kind: kind, msg: msg, err: err}
}

func NewServerError(slogger *slog.Logger, statusCode int, status, body string) error {
	slogger.Error("Client error: unexpected status",
		slog.String("kind", string(KindServerError)),
		slog.Int("status_code", statusCode),
	)

	return &ClientError{
		Kind:       KindServerError,
		StatusCode: statusCode,
		Status:     status,
		Body:       body,
		msg:        "unexpected status " + status,
	}
}

func IsKind(err error, kind ClientErrorKind) bool {
	var e *ClientError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func markerFor(kind ClientErrorKind) error {
	if kind == KindServerError {
		return errs.ErrServerResponse
	}
	return errs.ErrNetwork
}

// Infrastructure-specific error kinds
const (
	KindServerError ClientErrorKind = "SERVER_ERROR"
	KindNetwork     ClientErrorKind = "NETWORK"
	KindDecode      ClientErrorKind = "DECODE"
)
