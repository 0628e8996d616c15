// Package httpapi is the HTTP delivery layer: a gin router over the service
// layer, JSON in and out, bearer-token auth on everything except the auth
// endpoints and the workshop catalog.
package httpapi

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dsavelev/garagekeeper/internal/logging"
	"github.com/dsavelev/garagekeeper/internal/server/models"
	"github.com/dsavelev/garagekeeper/internal/server/services"
)

// Service dependencies are interfaces so handler tests can swap in fakes;
// the concrete implementations live in the services package.

type UserService interface {
	Register(ctx context.Context, email, password, displayName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
	ResetPassword(ctx context.Context, email string) error
	ConfirmReset(ctx context.Context, token, newPassword string) error
}

type VehicleService interface {
	Create(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error)
	Get(ctx context.Context, userID, id string) (*models.Vehicle, error)
	List(ctx context.Context, userID string) ([]*models.Vehicle, error)
	Update(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, userID, id string) error
}

type ServiceRecordService interface {
	Create(ctx context.Context, rec *models.ServiceRecord) (*models.ServiceRecord, error)
	Get(ctx context.Context, userID, id string) (*models.ServiceRecord, error)
	List(ctx context.Context, userID string, vehicleID *string) ([]*models.ServiceRecord, error)
	Update(ctx context.Context, rec *models.ServiceRecord) (*models.ServiceRecord, error)
	Delete(ctx context.Context, userID, id string) error
	TotalCost(ctx context.Context, userID string, vehicleID *string) (float64, error)
}

type ExpenseService interface {
	Create(ctx context.Context, e *models.Expense) (*models.Expense, error)
	Get(ctx context.Context, userID, id string) (*models.Expense, error)
	List(ctx context.Context, userID string, vehicleID *string, category *models.ExpenseCategory) ([]*models.Expense, error)
	Update(ctx context.Context, e *models.Expense) (*models.Expense, error)
	Delete(ctx context.Context, userID, id string) error
	Total(ctx context.Context, userID string, vehicleID *string, category *models.ExpenseCategory) (float64, error)
}

type ReminderService interface {
	Create(ctx context.Context, rem *models.Reminder) (*models.Reminder, error)
	Get(ctx context.Context, userID, id string) (*models.Reminder, error)
	List(ctx context.Context, userID string, vehicleID *string, category *models.ReminderCategory, status *models.ReminderStatus) ([]*models.Reminder, error)
	Update(ctx context.Context, rem *models.Reminder) (*models.Reminder, error)
	SetCompleted(ctx context.Context, userID, id string, completed bool) (*models.Reminder, error)
	Delete(ctx context.Context, userID, id string) error
}

type BookingService interface {
	Workshops(ctx context.Context) ([]*models.Workshop, error)
	Create(ctx context.Context, b *models.Booking) (*models.Booking, error)
	Get(ctx context.Context, userID, id string) (*models.Booking, error)
	List(ctx context.Context, userID string, vehicleID *string) ([]*models.Booking, error)
	Cancel(ctx context.Context, userID, id string) (*models.Booking, error)
	Delete(ctx context.Context, userID, id string) error
}

type StorageService interface {
	GetPresignedPutUrl(ctx context.Context, prefix string) (string, string, error)
	GetPresignedGetUrl(ctx context.Context, key string) (string, error)
	DeleteObject(ctx context.Context, key string) error
}

// Server wires the services into a gin router.
type Server struct {
	logger    logging.Logger
	jwtSecret []byte

	users          UserService
	vehicles       VehicleService
	serviceRecords ServiceRecordService
	expenses       ExpenseService
	reminders      ReminderService
	bookings       BookingService
	storage        StorageService

	now func() time.Time
}

// Deps bundles the Server's constructor arguments.
type Deps struct {
	Logger         logging.Logger
	JWTSecret      []byte
	Users          UserService
	Vehicles       VehicleService
	ServiceRecords ServiceRecordService
	Expenses       ExpenseService
	Reminders      ReminderService
	Bookings       BookingService
	Storage        StorageService
}

func NewServer(d Deps) *Server {
	return &Server{
		logger:         d.Logger.With("component", "httpapi"),
		jwtSecret:      d.JWTSecret,
		users:          d.Users,
		vehicles:       d.Vehicles,
		serviceRecords: d.ServiceRecords,
		expenses:       d.Expenses,
		reminders:      d.Reminders,
		bookings:       d.Bookings,
		storage:        d.Storage,
		now:            time.Now,
	}
}

// Router builds the /api/v1 route tree.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", s.handleRegister)
		authGroup.POST("/login", s.handleLogin)
		authGroup.POST("/refresh", s.handleRefresh)
		authGroup.POST("/logout", s.handleLogout)
		authGroup.POST("/reset-password", s.handleResetPassword)
		authGroup.POST("/reset-password/confirm", s.handleConfirmReset)
	}

	v1.GET("/workshops", s.handleListWorkshops)

	authed := v1.Group("")
	authed.Use(s.authMiddleware)
	{
		authed.GET("/me", s.handleGetMe)

		authed.GET("/vehicles", s.handleListVehicles)
		authed.POST("/vehicles", s.handleCreateVehicle)
		authed.GET("/vehicles/:id", s.handleGetVehicle)
		authed.PUT("/vehicles/:id", s.handleUpdateVehicle)
		authed.DELETE("/vehicles/:id", s.handleDeleteVehicle)

		authed.GET("/services", s.handleListServiceRecords)
		authed.POST("/services", s.handleCreateServiceRecord)
		authed.GET("/services/total", s.handleServiceRecordsTotal)
		authed.GET("/services/:id", s.handleGetServiceRecord)
		authed.PUT("/services/:id", s.handleUpdateServiceRecord)
		authed.DELETE("/services/:id", s.handleDeleteServiceRecord)

		authed.GET("/expenses", s.handleListExpenses)
		authed.POST("/expenses", s.handleCreateExpense)
		authed.GET("/expenses/total", s.handleExpensesTotal)
		authed.GET("/expenses/:id", s.handleGetExpense)
		authed.PUT("/expenses/:id", s.handleUpdateExpense)
		authed.DELETE("/expenses/:id", s.handleDeleteExpense)

		authed.GET("/reminders", s.handleListReminders)
		authed.POST("/reminders", s.handleCreateReminder)
		authed.GET("/reminders/:id", s.handleGetReminder)
		authed.PUT("/reminders/:id", s.handleUpdateReminder)
		authed.DELETE("/reminders/:id", s.handleDeleteReminder)
		authed.POST("/reminders/:id/complete", s.handleCompleteReminder)
		authed.POST("/reminders/:id/reopen", s.handleReopenReminder)

		authed.GET("/bookings", s.handleListBookings)
		authed.POST("/bookings", s.handleCreateBooking)
		authed.GET("/bookings/:id", s.handleGetBooking)
		authed.DELETE("/bookings/:id", s.handleDeleteBooking)
		authed.POST("/bookings/:id/cancel", s.handleCancelBooking)

		authed.POST("/uploads", s.handleCreateUpload)
		authed.GET("/uploads/url", s.handleGetUploadURL)
		authed.DELETE("/uploads", s.handleDeleteUpload)
	}

	return r
}
