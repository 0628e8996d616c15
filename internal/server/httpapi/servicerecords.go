package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type serviceRecordResponse struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicle_id"`
	ServiceType  string    `json:"service_type"`
	ServiceDate  time.Time `json:"service_date"`
	Mileage      int64     `json:"mileage"`
	Cost         float64   `json:"cost"`
	WorkshopName string    `json:"workshop_name,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	ReceiptKey   string    `json:"receipt_key,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newServiceRecordResponse(r *models.ServiceRecord) serviceRecordResponse {
	return serviceRecordResponse{
		ID:           r.ID,
		VehicleID:    r.VehicleID,
		ServiceType:  r.ServiceType,
		ServiceDate:  r.ServiceDate,
		Mileage:      r.Mileage,
		Cost:         r.Cost,
		WorkshopName: r.WorkshopName,
		Notes:        r.Notes,
		ReceiptKey:   r.ReceiptKey,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type serviceRecordRequest struct {
	VehicleID    string    `json:"vehicle_id" binding:"required"`
	ServiceType  string    `json:"service_type" binding:"required"`
	ServiceDate  time.Time `json:"service_date" binding:"required"`
	Mileage      int64     `json:"mileage"`
	Cost         float64   `json:"cost"`
	WorkshopName string    `json:"workshop_name"`
	Notes        string    `json:"notes"`
	ReceiptKey   string    `json:"receipt_key"`
}

func (r *serviceRecordRequest) toModel(userID, id string) *models.ServiceRecord {
	return &models.ServiceRecord{
		ID:           id,
		UserID:       userID,
		VehicleID:    r.VehicleID,
		ServiceType:  r.ServiceType,
		ServiceDate:  r.ServiceDate,
		Mileage:      r.Mileage,
		Cost:         r.Cost,
		WorkshopName: r.WorkshopName,
		Notes:        r.Notes,
		ReceiptKey:   r.ReceiptKey,
	}
}

func (s *Server) handleCreateServiceRecord(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req serviceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	rec, err := s.serviceRecords.Create(c.Request.Context(), req.toModel(userID, ""))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newServiceRecordResponse(rec))
}

func (s *Server) handleListServiceRecords(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	list, err := s.serviceRecords.List(c.Request.Context(), userID, optionalQuery(c, "vehicle_id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	out := make([]serviceRecordResponse, len(list))
	for i, rec := range list {
		out[i] = newServiceRecordResponse(rec)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetServiceRecord(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	rec, err := s.serviceRecords.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newServiceRecordResponse(rec))
}

func (s *Server) handleUpdateServiceRecord(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req serviceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	rec, err := s.serviceRecords.Update(c.Request.Context(), req.toModel(userID, c.Param("id")))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newServiceRecordResponse(rec))
}

func (s *Server) handleDeleteServiceRecord(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	if err := s.serviceRecords.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleServiceRecordsTotal(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	total, err := s.serviceRecords.TotalCost(c.Request.Context(), userID, optionalQuery(c, "vehicle_id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}
