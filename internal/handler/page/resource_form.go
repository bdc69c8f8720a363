package page

import (
	"errors"
	"log/slog"
	"net/http"

	"resource-form/internal/domain/resource"
	reqdto "resource-form/internal/handler/dto/request"
	"resource-form/internal/handler/httperr"
	"resource-form/internal/handler/middleware"
	"resource-form/internal/handler/view"
	"resource-form/internal/pkg/errs"
	"resource-form/internal/usecase/resourceform"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const FormPath = "/resources/form"

// ResourceFormHandler serves the server-rendered form. Requests sent by htmx get
// the form fragment back; plain form posts get the whole page.
type ResourceFormHandler struct {
	forms  resourceform.FormUseCase
	logger *slog.Logger
}

func NewResourceFormHandler(forms resourceform.FormUseCase, logger *slog.Logger) *ResourceFormHandler {
	return &ResourceFormHandler{forms: forms, logger: logger}
}

func (h *ResourceFormHandler) Show(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, resource.ErrUnknownRole, "Unknown role", nil)
		return
	}
	v, err := h.forms.Open(c.Request.Context(), role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.HTML(http.StatusOK, view.PageTemplate, view.NewFormView(v))
}

func (h *ResourceFormHandler) Validate(c *gin.Context) {
	id, values, ok := h.bind(c)
	if !ok {
		return
	}
	v, err := h.forms.Validate(c.Request.Context(), id, values.ToInput())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, v)
}

// Submit always answers with the re-rendered form: refusals and delivery failures
// are shown through the form's message rather than an error status.
func (h *ResourceFormHandler) Submit(c *gin.Context) {
	id, values, ok := h.bind(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	action := resource.ParseAction(values.Action)

	result, err := h.forms.Submit(ctx, id, values.ToInput(), action)
	switch {
	case err == nil:
		h.render(c, &result.View)
	case errors.Is(err, errs.ErrFormInvalid),
		errors.Is(err, errs.ErrSubmissionInFlight),
		errors.Is(err, resourceform.ErrActionUnavailable):
		h.logger.Info("submit refused", "session_id", id.String(), "action", string(action), "reason", err.Error())
		v, getErr := h.forms.Get(ctx, id)
		if getErr != nil {
			h.fail(c, getErr)
			return
		}
		h.render(c, v)
	default:
		h.fail(c, err)
	}
}

func (h *ResourceFormHandler) bind(c *gin.Context) (uuid.UUID, reqdto.ResourceFormValues, bool) {
	var values reqdto.ResourceFormValues
	id, err := uuid.Parse(c.Param("session"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return uuid.Nil, values, false
	}
	if err := c.ShouldBind(&values); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid form data", nil)
		return uuid.Nil, values, false
	}
	return id, values, true
}

func (h *ResourceFormHandler) render(c *gin.Context, v *resourceform.View) {
	name := view.PageTemplate
	if c.GetHeader("HX-Request") == "true" {
		name = view.BodyTemplate
	}
	c.HTML(http.StatusOK, name, view.NewFormView(v))
}

// fail sends an expired session back to a fresh form.
func (h *ResourceFormHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrSessionNotFound) {
		h.logger.Info("form session gone, reopening", "path", c.Request.URL.Path)
		if c.GetHeader("HX-Request") == "true" {
			c.Header("HX-Redirect", FormPath)
			c.Status(http.StatusNoContent)
			return
		}
		c.Redirect(http.StatusSeeOther, FormPath)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}
