package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-management-backend/internal/model"
)

type createOrganizationRequest struct {
	Name      string  `json:"name" binding:"required"`
	OwnerName string  `json:"ownerName" binding:"required"`
	Mobile    string  `json:"mobile" binding:"required"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Address   *string `json:"address"`
	Status    string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ListOrganizations handles GET /api/organizations.
func (h *Handler) ListOrganizations(c *gin.Context) {
	orgs, err := h.store.ListOrganizations(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orgs)
}

// CreateOrganization handles POST /api/organizations.
func (h *Handler) CreateOrganization(c *gin.Context) {
	var req createOrganizationRequest
	if !bind(c, &req) {
		return
	}

	org := model.Organization{
		Name:      req.Name,
		OwnerName: req.OwnerName,
		Mobile:    req.Mobile,
		Email:     req.Email,
		Address:   req.Address,
		Status:    req.Status,
	}
	if err := h.store.CreateOrganization(c.Request.Context(), &org); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, org)
}
