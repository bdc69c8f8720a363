package response

import (
	"encoding/json"

	"resource-form/internal/usecase/resourceform"
)

type FieldResponse struct {
	Present bool   `json:"present"`
	Value   string `json:"value"`
	State   string `json:"state"`
	Hint    string `json:"hint,omitempty"`
}

type ButtonResponse struct {
	Action  string `json:"action"`
	Label   string `json:"label"`
	Submit  bool   `json:"submit"`
	Enabled bool   `json:"enabled"`
}

type MessageResponse struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type ResourceFormResponse struct {
	SessionID   string           `json:"session_id"`
	Role        string           `json:"role"`
	State       string           `json:"state"`
	Valid       bool             `json:"valid"`
	Submitting  bool             `json:"submitting"`
	Name        FieldResponse    `json:"name"`
	Description FieldResponse    `json:"description"`
	Available   bool             `json:"available"`
	Price       string           `json:"price"`
	PriceUnit   string           `json:"price_unit"`
	Buttons     []ButtonResponse `json:"buttons"`
	Message     *MessageResponse `json:"message,omitempty"`
}

func FromFormView(v *resourceform.View) *ResourceFormResponse {
	s := v.Snapshot
	res := &ResourceFormResponse{
		SessionID:   v.SessionID.String(),
		Role:        string(s.Role),
		State:       string(v.State),
		Valid:       s.Valid,
		Submitting:  s.Submitting,
		Name:        fromField(s.Name),
		Description: fromField(s.Description),
		Available:   s.Available,
		Price:       s.Price,
		PriceUnit:   string(s.PriceUnit),
		Buttons:     make([]ButtonResponse, len(s.Buttons)),
	}
	for i, b := range s.Buttons {
		res.Buttons[i] = ButtonResponse{
			Action:  string(b.Action),
			Label:   b.Label,
			Submit:  b.Submit,
			Enabled: b.Enabled,
		}
	}
	if s.Message != nil {
		res.Message = &MessageResponse{Kind: string(s.Message.Kind), Text: s.Message.Text}
	}
	return res
}

func fromField(f resourceform.FieldSnapshot) FieldResponse {
	return FieldResponse{
		Present: f.Present,
		Value:   f.Value,
		State:   string(f.State),
		Hint:    f.Hint,
	}
}

type EchoResponse struct {
	StatusCode int               `json:"status_code"`
	URL        string            `json:"url"`
	JSON       json.RawMessage   `json:"json,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
}

type SubmitResourceFormResponse struct {
	Form    *ResourceFormResponse `json:"form"`
	Payload resourceform.Payload  `json:"payload"`
	Message MessageResponse       `json:"message"`
	Echo    *EchoResponse         `json:"echo,omitempty"`
	Error   string                `json:"error,omitempty"`
}

func FromSubmitView(v *resourceform.SubmitView) *SubmitResourceFormResponse {
	res := &SubmitResourceFormResponse{
		Form: FromFormView(&v.View),
	}
	if v.Result == nil {
		return res
	}
	r := v.Result
	res.Payload = r.Payload
	res.Message = MessageResponse{Kind: string(r.Message.Kind), Text: r.Message.Text}
	if r.Echo != nil {
		res.Echo = &EchoResponse{
			StatusCode: r.Echo.StatusCode,
			URL:        r.Echo.URL,
			JSON:       r.Echo.JSON,
			Headers:    r.Echo.Headers,
		}
	}
	if r.Err != nil {
		res.Error = r.Err.Error()
	}
	return res
}
