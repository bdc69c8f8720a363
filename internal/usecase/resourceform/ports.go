package resourceform

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

type Message struct {
	Kind MessageKind
	Text string
}

// Capability is what the submit flow may ask of a form: is it valid, and show the user something.
type Capability interface {
	CheckValidity() bool
	ShowMessage(kind MessageKind, text string)
}

// EchoResponse is the subset of the echo service's reply that gets logged.
type EchoResponse struct {
	StatusCode int
	URL        string
	JSON       json.RawMessage
	Headers    map[string]string
}

type EchoClient interface {
	Post(ctx context.Context, payload Payload) (*EchoResponse, error)
}

type SessionStore interface {
	Create(s *Session) uuid.UUID
	Get(id uuid.UUID) (*Session, error)
}
