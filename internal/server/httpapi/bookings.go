package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type workshopResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
}

func (s *Server) handleListWorkshops(c *gin.Context) {
	list, err := s.bookings.Workshops(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	out := make([]workshopResponse, len(list))
	for i, w := range list {
		out[i] = workshopResponse{ID: w.ID, Name: w.Name, Address: w.Address, Rating: w.Rating}
	}
	c.JSON(http.StatusOK, out)
}

type bookingResponse struct {
	ID          string    `json:"id"`
	VehicleID   string    `json:"vehicle_id"`
	WorkshopID  string    `json:"workshop_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	ServiceType string    `json:"service_type"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newBookingResponse(b *models.Booking) bookingResponse {
	return bookingResponse{
		ID:          b.ID,
		VehicleID:   b.VehicleID,
		WorkshopID:  b.WorkshopID,
		ScheduledAt: b.ScheduledAt,
		ServiceType: b.ServiceType,
		Notes:       b.Notes,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type bookingRequest struct {
	VehicleID   string    `json:"vehicle_id" binding:"required"`
	WorkshopID  string    `json:"workshop_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	ServiceType string    `json:"service_type" binding:"required"`
	Notes       string    `json:"notes"`
}

func (s *Server) handleCreateBooking(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	b, err := s.bookings.Create(c.Request.Context(), &models.Booking{
		UserID:      userID,
		VehicleID:   req.VehicleID,
		WorkshopID:  req.WorkshopID,
		ScheduledAt: req.ScheduledAt,
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBookingResponse(b))
}

func (s *Server) handleListBookings(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	list, err := s.bookings.List(c.Request.Context(), userID, optionalQuery(c, "vehicle_id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	out := make([]bookingResponse, len(list))
	for i, b := range list {
		out[i] = newBookingResponse(b)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetBooking(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	b, err := s.bookings.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBookingResponse(b))
}

func (s *Server) handleCancelBooking(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	b, err := s.bookings.Cancel(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBookingResponse(b))
}

func (s *Server) handleDeleteBooking(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	if err := s.bookings.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
