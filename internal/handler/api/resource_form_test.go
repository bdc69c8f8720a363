//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"resource-form/internal/domain/resource"
	"resource-form/internal/handler/api"
	resdto "resource-form/internal/handler/dto/response"
	"resource-form/internal/handler/middleware"
	"resource-form/internal/pkg/config"
	"resource-form/internal/pkg/errs"
	"resource-form/internal/usecase/resourceform"
	"resource-form/tests/common/builder"
	"resource-form/tests/common/httptest"
	"resource-form/tests/common/testutil"
	resourceformmock "resource-form/tests/mock/resourceform"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceFormHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockForm *resourceformmock.MockFormUseCase
	handler  *api.ResourceFormHandler
}

func (s *ResourceFormHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockForm = resourceformmock.NewMockFormUseCase(s.mockCtrl)
	s.handler = api.NewResourceFormHandler(s.mockForm)

	roles, err := middleware.NewRoleMiddleware(config.NewTestConfig())
	s.Require().NoError(err)

	s.router.POST("/api/resource-forms", roles.ResolveRole(), s.handler.Open)
	s.router.GET("/api/resource-forms/:session", s.handler.Get)
	s.router.POST("/api/resource-forms/:session/validate", s.handler.Validate)
	s.router.POST("/api/resource-forms/:session/submit", s.handler.Submit)
}

func (s *ResourceFormHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResourceFormHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceFormHandlerTestSuite))
}

func formView(role resource.Role, in resourceform.Input) *resourceform.View {
	form := resourceform.NewForm(role)
	form.Apply(in)
	return &resourceform.View{
		SessionID: uuid.New(),
		Snapshot:  form.Snapshot(),
		State:     resourceform.StateIdle,
	}
}

// ================================================================================
// TestOpen
// ================================================================================

func (s *ResourceFormHandlerTestSuite) TestOpen() {
	url := "/api/resource-forms"

	s.Run("success: defaults to the configured role", func() {
		view := formView(resource.RoleAdmin, resourceform.Input{})
		s.mockForm.EXPECT().Open(gomock.Any(), resource.RoleAdmin).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.ResourceFormResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.SessionID.String(), body.SessionID)
		s.Len(body.Buttons, 3)
		for _, b := range body.Buttons {
			s.False(b.Enabled)
		}
		s.Nil(body.Message)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": url + "/" + view.SessionID.String()})
	})

	s.Run("success: role header is honoured", func() {
		view := formView(resource.RoleReserver, resourceform.Input{})
		s.mockForm.EXPECT().Open(gomock.Any(), resource.RoleReserver).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "reserver")

		var body resdto.ResourceFormResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Len(body.Buttons, 1)
		s.Equal("create", body.Buttons[0].Action)
	})

	s.Run("success: body role wins over header", func() {
		view := formView(resource.RoleReserver, resourceform.Input{})
		s.mockForm.EXPECT().Open(gomock.Any(), resource.RoleReserver).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"role": "reserver"}, "admin")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "guest")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown role")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"role": "guest"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ResourceFormHandlerTestSuite) TestGet() {
	s.Run("success: returns the snapshot", func() {
		view := formView(resource.RoleAdmin, builder.NewResourceFormBuilder().BuildInput())
		s.mockForm.EXPECT().Get(gomock.Any(), view.SessionID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/resource-forms/"+view.SessionID.String(), nil, "")

		var body resdto.ResourceFormResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Equal("valid", body.Name.State)
		s.Equal("hour", body.PriceUnit)
		s.True(body.Buttons[0].Enabled)
		s.False(body.Buttons[1].Enabled)
	})

	s.Run("error: 400 on malformed session id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/resource-forms/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session id")
	})

	s.Run("error: 404 on unknown session", func() {
		id := uuid.New()
		s.mockForm.EXPECT().Get(gomock.Any(), id).
			Return(nil, errs.Wrap(errs.ErrSessionNotFound, "session "+id.String())).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/resource-forms/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Form session not found")
	})
}

// ================================================================================
// TestValidate
// ================================================================================

func (s *ResourceFormHandlerTestSuite) TestValidate() {
	id := uuid.New()
	url := "/api/resource-forms/" + id.String() + "/validate"

	s.Run("success: omitted fields are passed as nil", func() {
		view := formView(resource.RoleAdmin, resourceform.Input{})
		s.mockForm.EXPECT().Validate(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in resourceform.Input) (*resourceform.View, error) {
				s.Require().NotNil(in.Name)
				s.Equal("AB", *in.Name)
				s.Nil(in.Description)
				s.Nil(in.Available)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"resourceName": "AB"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown price unit", func() {
		req := testutil.DtoMap(s.T(), builder.NewResourceFormBuilder().BuildFieldsRequestDTO(),
			testutil.Field("resourcePriceUnit", "year"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *ResourceFormHandlerTestSuite) TestSubmit() {
	id := uuid.New()
	url := "/api/resource-forms/" + id.String() + "/submit"
	b := builder.NewResourceFormBuilder()
	reqBody := b.BuildSubmitRequestDTO()

	s.Run("success: returns payload, echo and message", func() {
		view := formView(resource.RoleAdmin, b.BuildInput())
		payload := resourceform.Payload{
			Action:              resource.ActionCreate,
			ResourceName:        b.Name,
			ResourceDescription: b.Description,
			ResourceAvailable:   true,
			ResourcePrice:       12.5,
			ResourcePriceUnit:   resource.PriceUnitHour,
		}
		s.mockForm.EXPECT().Submit(gomock.Any(), id, gomock.Any(), resource.ActionCreate).
			Return(&resourceform.SubmitView{
				View: *view,
				Result: &resourceform.Result{
					Payload: payload,
					Echo:    &resourceform.EchoResponse{StatusCode: http.StatusOK, URL: "https://httpbin.org/post"},
					Message: resourceform.Message{Kind: resourceform.MessageSuccess, Text: "Resource saved successfully (response received)."},
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SubmitResourceFormResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(payload, body.Payload)
		s.Equal("success", body.Message.Kind)
		s.Require().NotNil(body.Echo)
		s.Equal("https://httpbin.org/post", body.Echo.URL)
		s.Empty(body.Error)
	})

	s.Run("success: delivery failure still answers 200", func() {
		view := formView(resource.RoleAdmin, b.BuildInput())
		s.mockForm.EXPECT().Submit(gomock.Any(), id, gomock.Any(), resource.ActionCreate).
			Return(&resourceform.SubmitView{
				View: *view,
				Result: &resourceform.Result{
					Message: resourceform.Message{Kind: resourceform.MessageError, Text: "Server error: 500 Internal Server Error - boom"},
					Err:     errors.New("SERVER_ERROR: echo responded with an error status"),
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.SubmitResourceFormResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("error", body.Message.Kind)
		s.Contains(body.Message.Text, "Server error: 500")
		s.NotEmpty(body.Error)
		s.Nil(body.Echo)
	})

	s.Run("error: maps refusals to statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid form", err: errs.ErrFormInvalid, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Form is invalid"},
			{name: "action unavailable", err: resourceform.ErrActionUnavailable, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Action not available"},
			{name: "in flight", err: errs.ErrSubmissionInFlight, expectedStatus: http.StatusConflict, expectedMsg: "Submission already in progress"},
			{name: "session gone", err: errs.Wrap(errs.ErrSessionNotFound, "session"), expectedStatus: http.StatusNotFound, expectedMsg: "Form session not found"},
			{name: "unexpected", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockForm.EXPECT().Submit(gomock.Any(), id, gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 on unknown action", func() {
		req := testutil.DtoMap(s.T(), reqBody, testutil.Field("action", "archive"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("success: missing action defaults to create", func() {
		view := formView(resource.RoleAdmin, b.BuildInput())
		s.mockForm.EXPECT().Submit(gomock.Any(), id, gomock.Any(), resource.ActionCreate).
			Return(&resourceform.SubmitView{View: *view}, nil).Times(1)

		req := testutil.DtoMap(s.T(), reqBody, testutil.Field("action", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
