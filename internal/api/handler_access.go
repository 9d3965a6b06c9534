package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-management-backend/internal/rbac"
)

type roleResponse struct {
	Role rbac.Role `json:"role"`
	Rank int       `json:"rank"`
}

type accessCheckResponse struct {
	Role    string `json:"role"`
	Path    string `json:"path"`
	Allowed bool   `json:"allowed"`
}

// ListRoles handles GET /api/roles, highest rank first.
func (h *Handler) ListRoles(c *gin.Context) {
	roles := rbac.Roles()
	out := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, roleResponse{Role: r, Rank: r.Rank()})
	}
	c.JSON(http.StatusOK, out)
}

// VisibleMenu handles GET /api/access/menu?role=.
func (h *Handler) VisibleMenu(c *gin.Context) {
	c.JSON(http.StatusOK, rbac.VisibleMenuItems(rbac.Role(c.Query("role"))))
}

// CheckAccess handles GET /api/access/check?role=&path=.
func (h *Handler) CheckAccess(c *gin.Context) {
	role, path := c.Query("role"), c.Query("path")
	c.JSON(http.StatusOK, accessCheckResponse{
		Role:    role,
		Path:    path,
		Allowed: rbac.CanAccessPage(rbac.Role(role), path),
	})
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Printf("health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
