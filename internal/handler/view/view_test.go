//go:build unit

package view_test

import (
	"bytes"
	"strings"
	"testing"

	"resource-form/internal/domain/resource"
	"resource-form/internal/handler/view"
	"resource-form/internal/usecase/resourceform"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonState(t *testing.T) {
	t.Run("enabled button hovers", func(t *testing.T) {
		disabled, classes := view.ButtonState(true)

		assert.False(t, disabled)
		assert.Contains(t, classes, "hover:bg-brand-dark/80")
		assert.NotContains(t, classes, "cursor-not-allowed")
	})

	t.Run("disabled button looks disabled", func(t *testing.T) {
		disabled, classes := view.ButtonState(false)

		assert.True(t, disabled)
		assert.Contains(t, classes, "cursor-not-allowed opacity-50")
		assert.NotContains(t, classes, "hover:")
	})
}

func TestInputClasses(t *testing.T) {
	assert.Contains(t, view.InputClasses(resource.FieldValid), "border-green-500")
	assert.Contains(t, view.InputClasses(resource.FieldInvalid), "border-red-500")

	neutral := view.InputClasses(resource.FieldNeutral)
	assert.NotContains(t, neutral, "border-green-500")
	assert.NotContains(t, neutral, "border-red-500")
}

func TestMessageClasses(t *testing.T) {
	assert.Contains(t, view.MessageClasses(nil), "hidden")

	ok := view.MessageClasses(&resourceform.Message{Kind: resourceform.MessageSuccess, Text: "saved"})
	assert.Contains(t, ok, "bg-green-100")
	assert.NotContains(t, ok, "hidden")

	bad := view.MessageClasses(&resourceform.Message{Kind: resourceform.MessageError, Text: "nope"})
	assert.Contains(t, bad, "bg-red-100")
}

func TestNewFormView(t *testing.T) {
	form := resourceform.NewForm(resource.RoleAdmin)
	name, desc := "Meeting Room A", "Bright room with a view"
	unit := "day"
	form.Apply(resourceform.Input{Name: &name, Description: &desc, PriceUnit: &unit})
	id := uuid.New()

	fv := view.NewFormView(&resourceform.View{SessionID: id, Snapshot: form.Snapshot(), State: resourceform.StateIdle})

	assert.Equal(t, "/resources/form/"+id.String()+"/validate", fv.ValidateURL)
	assert.Equal(t, "/resources/form/"+id.String()+"/submit", fv.SubmitURL)
	assert.Equal(t, "admin", fv.Role)
	assert.Equal(t, "valid", fv.Name.State)
	assert.Contains(t, fv.Name.Classes, "border-green-500")

	require.Len(t, fv.Buttons, 3)
	assert.Equal(t, "submit", fv.Buttons[0].Type)
	assert.False(t, fv.Buttons[0].Disabled)
	assert.Equal(t, "button", fv.Buttons[1].Type)
	assert.True(t, fv.Buttons[1].Disabled)
	assert.True(t, fv.Buttons[2].Disabled)

	require.Len(t, fv.PriceUnits, len(resource.PriceUnits))
	for _, u := range fv.PriceUnits {
		assert.Equal(t, u.Value == "day", u.Checked, u.Value)
	}

	assert.Contains(t, fv.Message.Classes, "hidden")
	assert.Empty(t, fv.Message.Text)
}

func TestNewFormView_InvalidNameHint(t *testing.T) {
	form := resourceform.NewForm(resource.RoleReserver)
	name := "AB"
	form.Apply(resourceform.Input{Name: &name})

	fv := view.NewFormView(&resourceform.View{SessionID: uuid.New(), Snapshot: form.Snapshot()})

	assert.Equal(t, "invalid", fv.Name.State)
	assert.NotEmpty(t, fv.Name.Hint)
	assert.Equal(t, strings.ToUpper(fv.Name.Hint[:1]), fv.Name.Hint[:1])
	require.Len(t, fv.Buttons, 1)
	assert.True(t, fv.Buttons[0].Disabled)
}

func TestTemplates(t *testing.T) {
	tmpl, err := view.Templates()
	require.NoError(t, err)

	form := resourceform.NewForm(resource.RoleAdmin)
	fv := view.NewFormView(&resourceform.View{SessionID: uuid.New(), Snapshot: form.Snapshot()})

	var page bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&page, view.PageTemplate, fv))
	for _, id := range []string{"resourceForm", "resourceFormMessage", "resourceNameContainer", "resourceName", "resourceDescription", "resourceActions"} {
		assert.Contains(t, page.String(), `id="`+id+`"`)
	}
	assert.Contains(t, page.String(), `placeholder="e.g., Meeting Room A"`)

	var body bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&body, view.BodyTemplate, fv))
	assert.NotContains(t, body.String(), "<html")
	assert.Equal(t, 3, strings.Count(body.String(), `name="action"`))
}
