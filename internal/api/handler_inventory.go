package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-management-backend/internal/model"
)

type createHostelRequest struct {
	OrganizationID int64  `json:"organizationId" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Location       string `json:"location" binding:"required"`
	Type           string `json:"type" binding:"required"`
	Status         string `json:"status"`
}

type createFloorRequest struct {
	HostelID    int64  `json:"hostelId" binding:"required"`
	FloorNumber string `json:"floorNumber" binding:"required"`
}

type createRoomRequest struct {
	FloorID    int64            `json:"floorId" binding:"required"`
	RoomNumber string           `json:"roomNumber" binding:"required"`
	Capacity   int              `json:"capacity" binding:"required"`
	Type       string           `json:"type"`
	RentAmount *money           `json:"rentAmount" binding:"required"`
}

type createBedRequest struct {
	RoomID    int64  `json:"roomId" binding:"required"`
	BedNumber string `json:"bedNumber" binding:"required"`
	Status    string `json:"status"`
}

type bulkCreateBedsRequest struct {
	RoomID int64  `json:"roomId" binding:"required"`
	Count  int    `json:"count"`
	Prefix string `json:"prefix"`
}

type bedStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListHostels handles GET /api/hostels[?organizationId=].
func (h *Handler) ListHostels(c *gin.Context) {
	orgID, ok := optionalIDQuery(c, "organizationId")
	if !ok {
		return
	}
	hostels, err := h.store.ListHostels(c.Request.Context(), orgID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hostels)
}

// GetHostel handles GET /api/hostels/:hostelId.
func (h *Handler) GetHostel(c *gin.Context) {
	id, ok := idParam(c, "hostelId")
	if !ok {
		return
	}
	hostel, err := h.store.GetHostel(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hostel)
}

// CreateHostel handles POST /api/hostels.
func (h *Handler) CreateHostel(c *gin.Context) {
	var req createHostelRequest
	if !bind(c, &req) {
		return
	}

	hostel := model.Hostel{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Location:       req.Location,
		Type:           req.Type,
		Status:         req.Status,
	}
	if err := h.store.CreateHostel(c.Request.Context(), &hostel); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hostel)
}

// ListFloors handles GET /api/hostels/:hostelId/floors.
func (h *Handler) ListFloors(c *gin.Context) {
	id, ok := idParam(c, "hostelId")
	if !ok {
		return
	}
	floors, err := h.store.ListFloors(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, floors)
}

// CreateFloor handles POST /api/floors.
func (h *Handler) CreateFloor(c *gin.Context) {
	var req createFloorRequest
	if !bind(c, &req) {
		return
	}

	floor := model.Floor{HostelID: req.HostelID, FloorNumber: req.FloorNumber}
	if err := h.store.CreateFloor(c.Request.Context(), &floor); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, floor)
}

// ListRooms handles GET /api/floors/:floorId/rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	id, ok := idParam(c, "floorId")
	if !ok {
		return
	}
	rooms, err := h.store.ListRooms(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoom handles POST /api/rooms.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if !bind(c, &req) {
		return
	}

	room := model.Room{
		FloorID:    req.FloorID,
		RoomNumber: req.RoomNumber,
		Capacity:   req.Capacity,
		Type:       req.Type,
		RentAmount: req.RentAmount.Decimal,
	}
	if err := h.store.CreateRoom(c.Request.Context(), &room); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// ListBeds handles GET /api/rooms/:roomId/beds.
func (h *Handler) ListBeds(c *gin.Context) {
	id, ok := idParam(c, "roomId")
	if !ok {
		return
	}
	beds, err := h.store.ListBeds(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, beds)
}

// CreateBed handles POST /api/beds.
func (h *Handler) CreateBed(c *gin.Context) {
	var req createBedRequest
	if !bind(c, &req) {
		return
	}

	bed := model.Bed{RoomID: req.RoomID, BedNumber: req.BedNumber, Status: req.Status}
	if err := h.store.CreateBed(c.Request.Context(), &bed); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bed)
}

// BulkCreateBeds handles POST /api/beds/bulk.
func (h *Handler) BulkCreateBeds(c *gin.Context) {
	var req bulkCreateBedsRequest
	if !bind(c, &req) {
		return
	}

	beds, err := h.store.BulkCreateBeds(c.Request.Context(), req.RoomID, req.Count, req.Prefix)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, beds)
}

// SetBedStatus handles PATCH /api/beds/:bedId/status.
func (h *Handler) SetBedStatus(c *gin.Context) {
	id, ok := idParam(c, "bedId")
	if !ok {
		return
	}
	var req bedStatusRequest
	if !bind(c, &req) {
		return
	}

	bed, err := h.store.SetBedStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bed)
}

// ListAvailableBeds handles GET /api/beds/available.
func (h *Handler) ListAvailableBeds(c *gin.Context) {
	beds, err := h.store.ListAvailableBeds(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, beds)
}
