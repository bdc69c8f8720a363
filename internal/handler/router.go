package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"resource-form/internal/handler/api"
	"resource-form/internal/handler/middleware"
	"resource-form/internal/handler/page"
	"resource-form/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	templates *template.Template,
	formAPI *api.ResourceFormHandler,
	formPage *page.ResourceFormHandler,
	roleMiddleware *middleware.RoleMiddleware,
) {
	engine.SetHTMLTemplate(templates)
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, formAPI, formPage, roleMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, formAPI *api.ResourceFormHandler, formPage *page.ResourceFormHandler, roleMiddleware *middleware.RoleMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, page.FormPath)
	})

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	forms := engine.Group(page.FormPath)
	{
		addRoutes(forms, []route{
			{Method: http.MethodGet, Path: "", Handler: formPage.Show, Mw: []gin.HandlerFunc{roleMiddleware.ResolveRole()}},
			{Method: http.MethodPost, Path: "/:session/validate", Handler: formPage.Validate},
			{Method: http.MethodPost, Path: "/:session/submit", Handler: formPage.Submit},
		})
	}

	apiGroup := engine.Group("/api")
	{
		resourceForms := apiGroup.Group("/resource-forms")
		{
			addRoutes(resourceForms, []route{
				{Method: http.MethodPost, Path: "", Handler: formAPI.Open, Mw: []gin.HandlerFunc{roleMiddleware.ResolveRole()}},
				{Method: http.MethodGet, Path: "/:session", Handler: formAPI.Get},
				{Method: http.MethodPost, Path: "/:session/validate", Handler: formAPI.Validate},
				{Method: http.MethodPost, Path: "/:session/submit", Handler: formAPI.Submit},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
