package view

import (
	"embed"
	"html/template"
	"strings"

	"resource-form/internal/domain/resource"
	"resource-form/internal/usecase/resourceform"
)

const (
	PageTemplate = "resource_form.html"
	BodyTemplate = "resource_form_body"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

type FieldView struct {
	Present bool
	State   string
	Value   string
	Classes string
	Hint    string
}

type ButtonView struct {
	Label    string
	Type     string
	Value    string
	Disabled bool
	Classes  string
}

type PriceUnitView struct {
	Value   string
	Label   string
	Checked bool
}

type MessageView struct {
	Kind    string
	Text    string
	Classes string
}

type FormView struct {
	SessionID   string
	Role        string
	ValidateURL string
	SubmitURL   string
	Name        FieldView
	Description FieldView
	Available   bool
	Price       string
	PriceUnits  []PriceUnitView
	Buttons     []ButtonView
	Submitting  bool
	Message     MessageView
}

func NewFormView(v *resourceform.View) FormView {
	snap := v.Snapshot
	id := v.SessionID.String()

	fv := FormView{
		SessionID:   id,
		Role:        string(snap.Role),
		ValidateURL: "/resources/form/" + id + "/validate",
		SubmitURL:   "/resources/form/" + id + "/submit",
		Name:        newFieldView(snap.Name),
		Description: newFieldView(snap.Description),
		Available:   snap.Available,
		Price:       snap.Price,
		Submitting:  snap.Submitting,
		Message: MessageView{
			Classes: MessageClasses(snap.Message),
		},
	}
	if snap.Message != nil {
		fv.Message.Kind = string(snap.Message.Kind)
		fv.Message.Text = snap.Message.Text
	}

	for _, u := range resource.PriceUnits {
		fv.PriceUnits = append(fv.PriceUnits, PriceUnitView{
			Value:   string(u),
			Label:   "per " + string(u),
			Checked: u == snap.PriceUnit,
		})
	}

	for _, b := range snap.Buttons {
		fv.Buttons = append(fv.Buttons, newButtonView(b))
	}
	return fv
}

func newFieldView(f resourceform.FieldSnapshot) FieldView {
	return FieldView{
		Present: f.Present,
		State:   string(f.State),
		Value:   f.Value,
		Classes: InputClasses(f.State),
		Hint:    capitalize(f.Hint),
	}
}

func newButtonView(b resource.ActionButton) ButtonView {
	disabled, classes := ButtonState(b.Enabled)
	typ := "button"
	if b.Submit {
		typ = "submit"
	}
	return ButtonView{
		Label:    b.Label,
		Type:     typ,
		Value:    string(b.Action),
		Disabled: disabled,
		Classes:  classes,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
