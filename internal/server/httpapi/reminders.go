package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type reminderResponse struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicle_id"`
	Category     string    `json:"category"`
	Title        string    `json:"title"`
	DueDate      time.Time `json:"due_date"`
	NotifyBefore *int      `json:"notify_before,omitempty"`
	Completed    bool      `json:"completed"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"status_label"`
	DaysUntilDue int       `json:"days_until_due"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// newReminderResponse computes the derived fields against now so every
// reminder in one response shares the same clock reading.
func newReminderResponse(r *models.Reminder, now time.Time) reminderResponse {
	return reminderResponse{
		ID:           r.ID,
		VehicleID:    r.VehicleID,
		Category:     string(r.Category),
		Title:        r.Title,
		DueDate:      r.DueDate,
		NotifyBefore: r.NotifyBefore,
		Completed:    r.Completed,
		Notes:        r.Notes,
		Status:       string(r.Status(now)),
		StatusLabel:  r.StatusLabel(now),
		DaysUntilDue: r.DaysUntilDue(now),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type reminderRequest struct {
	VehicleID    string    `json:"vehicle_id" binding:"required"`
	Category     string    `json:"category" binding:"required"`
	Title        string    `json:"title" binding:"required"`
	DueDate      time.Time `json:"due_date" binding:"required"`
	NotifyBefore *int      `json:"notify_before"`
	Notes        string    `json:"notes"`
}

func (r *reminderRequest) toModel(userID, id string) *models.Reminder {
	return &models.Reminder{
		ID:           id,
		UserID:       userID,
		VehicleID:    r.VehicleID,
		Category:     models.ReminderCategory(r.Category),
		Title:        r.Title,
		DueDate:      r.DueDate,
		NotifyBefore: r.NotifyBefore,
		Notes:        r.Notes,
	}
}

func (s *Server) handleCreateReminder(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req reminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	rem, err := s.reminders.Create(c.Request.Context(), req.toModel(userID, ""))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newReminderResponse(rem, s.now()))
}

func (s *Server) handleListReminders(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var category *models.ReminderCategory
	if v := optionalQuery(c, "category"); v != nil {
		cat := models.ReminderCategory(*v)
		category = &cat
	}
	var status *models.ReminderStatus
	if v := optionalQuery(c, "status"); v != nil {
		st := models.ReminderStatus(*v)
		status = &st
	}

	list, err := s.reminders.List(c.Request.Context(), userID, optionalQuery(c, "vehicle_id"), category, status)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	now := s.now()
	out := make([]reminderResponse, len(list))
	for i, rem := range list {
		out[i] = newReminderResponse(rem, now)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetReminder(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	rem, err := s.reminders.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReminderResponse(rem, s.now()))
}

func (s *Server) handleUpdateReminder(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req reminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	rem, err := s.reminders.Update(c.Request.Context(), req.toModel(userID, c.Param("id")))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReminderResponse(rem, s.now()))
}

func (s *Server) handleDeleteReminder(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	if err := s.reminders.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) setReminderCompleted(c *gin.Context, completed bool) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	rem, err := s.reminders.SetCompleted(c.Request.Context(), userID, c.Param("id"), completed)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReminderResponse(rem, s.now()))
}

func (s *Server) handleCompleteReminder(c *gin.Context) {
	s.setReminderCompleted(c, true)
}

func (s *Server) handleReopenReminder(c *gin.Context) {
	s.setReminderCompleted(c, false)
}
