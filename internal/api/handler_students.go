package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-management-backend/internal/model"
	"hostel-management-backend/internal/rbac"
)

type createStudentRequest struct {
	Name            string  `json:"name" binding:"required"`
	Mobile          string  `json:"mobile" binding:"required"`
	Email           *string `json:"email" binding:"omitempty,email"`
	IDProofType     *string `json:"idProofType"`
	IDProofNumber   *string `json:"idProofNumber"`
	IDProofPhotoURL *string `json:"idProofPhotoUrl"`
	GuardianName    *string `json:"guardianName"`
	GuardianMobile  *string `json:"guardianMobile"`
	Address         *string `json:"address"`
	PhotoURL        *string `json:"photoUrl"`
	Status          string  `json:"status"`
}

type studentPhotoRequest struct {
	PhotoURL string `json:"photoUrl" binding:"required"`
}

type studentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type createUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type userRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ListStudents handles GET /api/students.
func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.store.ListStudents(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// CreateStudent handles POST /api/students.
func (h *Handler) CreateStudent(c *gin.Context) {
	var req createStudentRequest
	if !bind(c, &req) {
		return
	}

	student := model.Student{
		Name:            req.Name,
		Mobile:          req.Mobile,
		Email:           req.Email,
		IDProofType:     req.IDProofType,
		IDProofNumber:   req.IDProofNumber,
		IDProofPhotoURL: req.IDProofPhotoURL,
		GuardianName:    req.GuardianName,
		GuardianMobile:  req.GuardianMobile,
		Address:         req.Address,
		PhotoURL:        req.PhotoURL,
		Status:          req.Status,
	}
	if err := h.store.CreateStudent(c.Request.Context(), &student); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

// UpdateStudentPhoto handles PATCH /api/students/:studentId/photo.
func (h *Handler) UpdateStudentPhoto(c *gin.Context) {
	id, ok := idParam(c, "studentId")
	if !ok {
		return
	}
	var req studentPhotoRequest
	if !bind(c, &req) {
		return
	}

	student, err := h.store.UpdateStudentPhoto(c.Request.Context(), id, req.PhotoURL)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// SetStudentStatus handles PATCH /api/students/:studentId/status.
func (h *Handler) SetStudentStatus(c *gin.Context) {
	id, ok := idParam(c, "studentId")
	if !ok {
		return
	}
	var req studentStatusRequest
	if !bind(c, &req) {
		return
	}

	student, err := h.store.SetStudentStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// CreateUser handles POST /api/users.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if !bind(c, &req) {
		return
	}

	user := model.User{Email: req.Email, Name: req.Name, Role: req.Role}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// AssignUserRole handles PATCH /api/users/:userId/role.
func (h *Handler) AssignUserRole(c *gin.Context) {
	id, ok := idParam(c, "userId")
	if !ok {
		return
	}
	var req userRoleRequest
	if !bind(c, &req) {
		return
	}
	role, known := rbac.ParseRole(req.Role)
	if !known {
		badRequest(c, "role", "unknown role "+req.Role)
		return
	}

	user, err := h.store.AssignUserRole(c.Request.Context(), id, role)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
