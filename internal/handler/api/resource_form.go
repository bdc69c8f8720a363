package api

import (
	"errors"
	"net/http"

	"resource-form/internal/domain/resource"
	reqdto "resource-form/internal/handler/dto/request"
	resdto "resource-form/internal/handler/dto/response"
	"resource-form/internal/handler/httperr"
	"resource-form/internal/handler/middleware"
	"resource-form/internal/pkg/errs"
	"resource-form/internal/usecase/resourceform"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResourceFormHandler struct {
	forms resourceform.FormUseCase
}

func NewResourceFormHandler(forms resourceform.FormUseCase) *ResourceFormHandler {
	return &ResourceFormHandler{forms: forms}
}

// @Summary Open resource form
// @Description Start a form session; the role decides which action buttons are offered
// @Tags resource-forms
// @Accept json
// @Produce json
// @Param request body reqdto.OpenResourceFormRequest false "Open form request"
// @Success 201 {object} resdto.ResourceFormResponse
// @Failure 400 {object} map[string]string
// @Router /api/resource-forms [post]
func (h *ResourceFormHandler) Open(c *gin.Context) {
	var req reqdto.OpenResourceFormRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	role, ok := middleware.GetUserRole(c)
	if req.Role != "" {
		parsed, err := resource.ParseRole(req.Role)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown role", nil)
			return
		}
		role, ok = parsed, true
	}
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, resource.ErrUnknownRole, "Unknown role", nil)
		return
	}

	view, err := h.forms.Open(c.Request.Context(), role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.Header("Location", "/api/resource-forms/"+view.SessionID.String())
	c.JSON(http.StatusCreated, resdto.FromFormView(view))
}

// @Summary Get resource form
// @Description Current state of a form session
// @Tags resource-forms
// @Produce json
// @Param session path string true "Session ID"
// @Success 200 {object} resdto.ResourceFormResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/resource-forms/{session} [get]
func (h *ResourceFormHandler) Get(c *gin.Context) {
	id, ok := sessionParam(c)
	if !ok {
		return
	}
	view, err := h.forms.Get(c.Request.Context(), id)
	if err != nil {
		abortWithFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFormView(view))
}

// @Summary Validate resource form
// @Description Apply changed fields and re-run validation; omitted fields keep their value
// @Tags resource-forms
// @Accept json
// @Produce json
// @Param session path string true "Session ID"
// @Param request body reqdto.ResourceFormFieldsRequest true "Changed fields"
// @Success 200 {object} resdto.ResourceFormResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/resource-forms/{session}/validate [post]
func (h *ResourceFormHandler) Validate(c *gin.Context) {
	id, ok := sessionParam(c)
	if !ok {
		return
	}
	var req reqdto.ResourceFormFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.forms.Validate(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortWithFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFormView(view))
}

// @Summary Submit resource form
// @Description Send the form to the echo service. Delivery failures still answer 200 with an error message.
// @Tags resource-forms
// @Accept json
// @Produce json
// @Param session path string true "Session ID"
// @Param request body reqdto.SubmitResourceFormRequest true "Fields and action"
// @Success 200 {object} resdto.SubmitResourceFormResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/resource-forms/{session}/submit [post]
func (h *ResourceFormHandler) Submit(c *gin.Context) {
	id, ok := sessionParam(c)
	if !ok {
		return
	}
	var req reqdto.SubmitResourceFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, action := req.ToDomain()

	result, err := h.forms.Submit(c.Request.Context(), id, in, action)
	if err != nil {
		abortWithFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmitView(result))
}

func sessionParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("session"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortWithFormError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Form session not found", nil)
	case errors.Is(err, errs.ErrFormInvalid):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Form is invalid", nil)
	case errors.Is(err, resourceform.ErrActionUnavailable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Action not available", nil)
	case errors.Is(err, errs.ErrSubmissionInFlight):
		httperr.AbortWithError(c, http.StatusConflict, err, "Submission already in progress", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
