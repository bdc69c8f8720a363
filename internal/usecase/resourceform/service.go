package resourceform

import (
	"context"
	"log/slog"

	"resource-form/internal/domain/resource"

	"github.com/google/uuid"
)

// Session is one page load: its form and the submitter bound to it.
type Session struct {
	Form      *Form
	Submitter *Submitter
}

type View struct {
	SessionID uuid.UUID
	Snapshot  Snapshot
	State     SubmitState
}

type SubmitView struct {
	View
	Result *Result
}

type FormUseCase interface {
	Open(ctx context.Context, role resource.Role) (*View, error)
	Get(ctx context.Context, id uuid.UUID) (*View, error)
	Validate(ctx context.Context, id uuid.UUID, in Input) (*View, error)
	Submit(ctx context.Context, id uuid.UUID, in Input, action resource.Action) (*SubmitView, error)
}

type formUseCaseImpl struct {
	sessions SessionStore
	client   EchoClient
	logger   *slog.Logger
}

func NewFormUseCase(sessions SessionStore, client EchoClient, logger *slog.Logger) FormUseCase {
	return &formUseCaseImpl{
		sessions: sessions,
		client:   client,
		logger:   logger,
	}
}

func (u *formUseCaseImpl) Open(_ context.Context, role resource.Role) (*View, error) {
	form := NewForm(role)
	sess := &Session{
		Form:      form,
		Submitter: NewSubmitter(form, u.client, u.logger),
	}
	id := u.sessions.Create(sess)

	u.logger.Debug("form session opened", "session_id", id.String(), "role", string(role))
	return view(id, sess), nil
}

func (u *formUseCaseImpl) Get(_ context.Context, id uuid.UUID) (*View, error) {
	sess, err := u.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	return view(id, sess), nil
}

func (u *formUseCaseImpl) Validate(_ context.Context, id uuid.UUID, in Input) (*View, error) {
	sess, err := u.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	sess.Form.Apply(in)
	return view(id, sess), nil
}

func (u *formUseCaseImpl) Submit(ctx context.Context, id uuid.UUID, in Input, action resource.Action) (*SubmitView, error) {
	sess, err := u.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	sess.Form.Apply(in)

	result, err := sess.Submitter.Submit(ctx, action)
	if err != nil {
		return nil, err
	}
	return &SubmitView{View: *view(id, sess), Result: result}, nil
}

func view(id uuid.UUID, sess *Session) *View {
	return &View{
		SessionID: id,
		Snapshot:  sess.Form.Snapshot(),
		State:     sess.Submitter.State(),
	}
}
