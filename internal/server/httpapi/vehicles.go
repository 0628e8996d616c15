package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type vehicleResponse struct {
	ID           string     `json:"id"`
	Make         string     `json:"make"`
	Model        string     `json:"model"`
	Year         int        `json:"year"`
	LicensePlate string     `json:"license_plate,omitempty"`
	Color        string     `json:"color,omitempty"`
	FuelType     string     `json:"fuel_type,omitempty"`
	Mileage      int64      `json:"mileage"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	PhotoKey     string     `json:"photo_key,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func newVehicleResponse(v *models.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:           v.ID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.LicensePlate,
		Color:        v.Color,
		FuelType:     v.FuelType,
		Mileage:      v.Mileage,
		PurchaseDate: v.PurchaseDate,
		PhotoKey:     v.PhotoKey,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

type vehicleRequest struct {
	Make         string     `json:"make" binding:"required"`
	Model        string     `json:"model" binding:"required"`
	Year         int        `json:"year" binding:"required"`
	LicensePlate string     `json:"license_plate"`
	Color        string     `json:"color"`
	FuelType     string     `json:"fuel_type"`
	Mileage      int64      `json:"mileage"`
	PurchaseDate *time.Time `json:"purchase_date"`
	PhotoKey     string     `json:"photo_key"`
}

func (r *vehicleRequest) toModel(userID, id string) *models.Vehicle {
	return &models.Vehicle{
		ID:           id,
		UserID:       userID,
		Make:         r.Make,
		Model:        r.Model,
		Year:         r.Year,
		LicensePlate: r.LicensePlate,
		Color:        r.Color,
		FuelType:     r.FuelType,
		Mileage:      r.Mileage,
		PurchaseDate: r.PurchaseDate,
		PhotoKey:     r.PhotoKey,
	}
}

func (s *Server) handleCreateVehicle(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	v, err := s.vehicles.Create(c.Request.Context(), req.toModel(userID, ""))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newVehicleResponse(v))
}

func (s *Server) handleListVehicles(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	list, err := s.vehicles.List(c.Request.Context(), userID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	out := make([]vehicleResponse, len(list))
	for i, v := range list {
		out[i] = newVehicleResponse(v)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetVehicle(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	v, err := s.vehicles.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newVehicleResponse(v))
}

func (s *Server) handleUpdateVehicle(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	v, err := s.vehicles.Update(c.Request.Context(), req.toModel(userID, c.Param("id")))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newVehicleResponse(v))
}

func (s *Server) handleDeleteVehicle(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	if err := s.vehicles.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
