package middleware

import (
	"log/slog"
	"net/http"

	"resource-form/internal/domain/resource"
	"resource-form/internal/handler/httperr"
	"resource-form/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserRoleKey = "user_role"
	roleHeader     = "X-User-Role"
)

type RoleMiddleware struct {
	defaultRole resource.Role
}

func NewRoleMiddleware(cfg config.Config) (*RoleMiddleware, error) {
	role, err := resource.ParseRole(cfg.Form.Role)
	if err != nil {
		return nil, err
	}
	return &RoleMiddleware{defaultRole: role}, nil
}

// ResolveRole picks the viewer's role from the role query parameter, then the
// X-User-Role header, then the configured default.
func (m *RoleMiddleware) ResolveRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("role")
		if raw == "" {
			raw = c.GetHeader(roleHeader)
		}

		role := m.defaultRole
		if raw != "" {
			parsed, err := resource.ParseRole(raw)
			if err != nil {
				slog.Warn("Rejected unknown role", "role", raw)
				httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown role", nil)
				return
			}
			role = parsed
		}

		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

func GetUserRole(c *gin.Context) (resource.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(resource.Role)
	return role, ok
}
