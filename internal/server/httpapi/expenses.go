package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dsavelev/garagekeeper/internal/server/models"
)

type expenseResponse struct {
	ID         string    `json:"id"`
	VehicleID  string    `json:"vehicle_id"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Notes      string    `json:"notes,omitempty"`
	ReceiptKey string    `json:"receipt_key,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newExpenseResponse(e *models.Expense) expenseResponse {
	return expenseResponse{
		ID:         e.ID,
		VehicleID:  e.VehicleID,
		Category:   string(e.Category),
		Amount:     e.Amount,
		Date:       e.Date,
		Notes:      e.Notes,
		ReceiptKey: e.ReceiptKey,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

type expenseRequest struct {
	VehicleID  string    `json:"vehicle_id" binding:"required"`
	Category   string    `json:"category" binding:"required"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date" binding:"required"`
	Notes      string    `json:"notes"`
	ReceiptKey string    `json:"receipt_key"`
}

func (r *expenseRequest) toModel(userID, id string) *models.Expense {
	return &models.Expense{
		ID:         id,
		UserID:     userID,
		VehicleID:  r.VehicleID,
		Category:   models.ExpenseCategory(r.Category),
		Amount:     r.Amount,
		Date:       r.Date,
		Notes:      r.Notes,
		ReceiptKey: r.ReceiptKey,
	}
}

// expenseCategoryFilter parses the optional ?category= query.
func expenseCategoryFilter(c *gin.Context) *models.ExpenseCategory {
	if v := optionalQuery(c, "category"); v != nil {
		cat := models.ExpenseCategory(*v)
		return &cat
	}
	return nil
}

func (s *Server) handleCreateExpense(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	e, err := s.expenses.Create(c.Request.Context(), req.toModel(userID, ""))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newExpenseResponse(e))
}

func (s *Server) handleListExpenses(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	list, err := s.expenses.List(c.Request.Context(), userID, optionalQuery(c, "vehicle_id"), expenseCategoryFilter(c))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	out := make([]expenseResponse, len(list))
	for i, e := range list {
		out[i] = newExpenseResponse(e)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetExpense(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	e, err := s.expenses.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpenseResponse(e))
}

func (s *Server) handleUpdateExpense(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	e, err := s.expenses.Update(c.Request.Context(), req.toModel(userID, c.Param("id")))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpenseResponse(e))
}

func (s *Server) handleDeleteExpense(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	if err := s.expenses.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleExpensesTotal(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		return
	}

	total, err := s.expenses.Total(c.Request.Context(), userID, optionalQuery(c, "vehicle_id"), expenseCategoryFilter(c))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}
