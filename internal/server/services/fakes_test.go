package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dsavelev/garagekeeper/internal/dbx"
	"github.com/dsavelev/garagekeeper/internal/server/models"
	bookingsrepo "github.com/dsavelev/garagekeeper/internal/server/repositories/bookings"
	expensesrepo "github.com/dsavelev/garagekeeper/internal/server/repositories/expenses"
	passwordresetsrepo "github.com/dsavelev/garagekeeper/internal/server/repositories/passwordresets"
	refreshtokensrepo "github.com/dsavelev/garagekeeper/internal/server/repositories/refreshtokens"
	remindersrepo "github.com/dsavelev/garagekeeper/internal/server/repositories/reminders"
	servicerecordsrepo "github.com/dsavelev/garagekeeper/internal/server/repositories/servicerecords"
	usersrepo "github.com/dsavelev/garagekeeper/internal/server/repositories/users"
	vehiclesrepo "github.com/dsavelev/garagekeeper/internal/server/repositories/vehicles"
	workshopsrepo "github.com/dsavelev/garagekeeper/internal/server/repositories/workshops"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// --- fake repositories ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	updatePasswordErr  error
	updatePasswordHash string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	f.updatePasswordHash = passwordHash
	return f.updatePasswordErr
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr    error
	deleted   []string
	createErr error
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	return f.createErr
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.delErr
}

type fakeResetRepo struct {
	findOut *models.PasswordReset
	findErr error

	createErr    error
	createdToken string

	delErr  error
	deleted []string
}

func (f *fakeResetRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	f.createdToken = token
	return f.createErr
}

func (f *fakeResetRepo) Find(ctx context.Context, token string) (*models.PasswordReset, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeResetRepo) Delete(ctx context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.delErr
}

type fakeVehiclesRepo struct {
	createOut *models.Vehicle
	createErr error

	getOut *models.Vehicle
	getErr error

	listOut []*models.Vehicle
	listErr error

	updateOut *models.Vehicle
	updateErr error

	delErr  error
	deleted []string
}

func (f *fakeVehiclesRepo) Create(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeVehiclesRepo) GetByID(ctx context.Context, userID, id string) (*models.Vehicle, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeVehiclesRepo) SelectAll(ctx context.Context, userID string) ([]*models.Vehicle, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeVehiclesRepo) Update(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeVehiclesRepo) Delete(ctx context.Context, userID, id string) error {
	f.deleted = append(f.deleted, id)
	return f.delErr
}

type fakeServiceRecordsRepo struct {
	createOut *models.ServiceRecord
	createErr error

	getOut *models.ServiceRecord
	getErr error

	listOut []*models.ServiceRecord
	listErr error

	updateOut *models.ServiceRecord
	updateErr error

	delErr error

	totalOut float64
	totalErr error
}

func (f *fakeServiceRecordsRepo) Create(ctx context.Context, rec *models.ServiceRecord) (*models.ServiceRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeServiceRecordsRepo) GetByID(ctx context.Context, userID, id string) (*models.ServiceRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeServiceRecordsRepo) SelectAll(ctx context.Context, userID string, vehicleID *string) ([]*models.ServiceRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeServiceRecordsRepo) Update(ctx context.Context, rec *models.ServiceRecord) (*models.ServiceRecord, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeServiceRecordsRepo) Delete(ctx context.Context, userID, id string) error {
	return f.delErr
}

func (f *fakeServiceRecordsRepo) SelectTotalCost(ctx context.Context, userID string, vehicleID *string) (float64, error) {
	return f.totalOut, f.totalErr
}

type fakeExpensesRepo struct {
	createOut *models.Expense
	createErr error

	getOut *models.Expense
	getErr error

	listOut []*models.Expense
	listErr error

	updateOut *models.Expense
	updateErr error

	delErr error

	totalOut float64
	totalErr error
}

func (f *fakeExpensesRepo) Create(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeExpensesRepo) GetByID(ctx context.Context, userID, id string) (*models.Expense, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeExpensesRepo) SelectAll(ctx context.Context, userID string, vehicleID *string, category *models.ExpenseCategory) ([]*models.Expense, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeExpensesRepo) Update(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeExpensesRepo) Delete(ctx context.Context, userID, id string) error {
	return f.delErr
}

func (f *fakeExpensesRepo) SelectTotal(ctx context.Context, userID string, vehicleID *string, category *models.ExpenseCategory) (float64, error) {
	return f.totalOut, f.totalErr
}

type fakeRemindersRepo struct {
	createOut *models.Reminder
	createErr error

	getOut *models.Reminder
	getErr error

	listOut []*models.Reminder
	listErr error

	updateOut *models.Reminder
	updateErr error

	setCompletedOut *models.Reminder
	setCompletedErr error

	delErr error
}

func (f *fakeRemindersRepo) Create(ctx context.Context, rem *models.Reminder) (*models.Reminder, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeRemindersRepo) GetByID(ctx context.Context, userID, id string) (*models.Reminder, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeRemindersRepo) SelectAll(ctx context.Context, userID string, vehicleID *string, category *models.ReminderCategory) ([]*models.Reminder, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeRemindersRepo) Update(ctx context.Context, rem *models.Reminder) (*models.Reminder, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeRemindersRepo) SetCompleted(ctx context.Context, userID, id string, completed bool) (*models.Reminder, error) {
	if f.setCompletedErr != nil {
		return nil, f.setCompletedErr
	}
	return f.setCompletedOut, nil
}

func (f *fakeRemindersRepo) Delete(ctx context.Context, userID, id string) error {
	return f.delErr
}

type fakeWorkshopsRepo struct {
	listOut []*models.Workshop
	listErr error

	getOut *models.Workshop
	getErr error
}

func (f *fakeWorkshopsRepo) SelectAll(ctx context.Context) ([]*models.Workshop, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeWorkshopsRepo) GetByID(ctx context.Context, id string) (*models.Workshop, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeBookingsRepo struct {
	createOut *models.Booking
	createErr error

	getOut *models.Booking
	getErr error

	listOut []*models.Booking
	listErr error

	setStatusOut    *models.Booking
	setStatusErr    error
	setStatusCalled models.BookingStatus

	delErr error
}

func (f *fakeBookingsRepo) Create(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeBookingsRepo) GetByID(ctx context.Context, userID, id string) (*models.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeBookingsRepo) SelectAll(ctx context.Context, userID string, vehicleID *string) ([]*models.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeBookingsRepo) SetStatus(ctx context.Context, userID, id string, status models.BookingStatus) (*models.Booking, error) {
	f.setStatusCalled = status
	if f.setStatusErr != nil {
		return nil, f.setStatusErr
	}
	return f.setStatusOut, nil
}

func (f *fakeBookingsRepo) Delete(ctx context.Context, userID, id string) error {
	return f.delErr
}

// fakeRepoManager hands out the configured fakes regardless of the DBTX it
// is given, matching how services reuse repositories inside transactions.
type fakeRepoManager struct {
	users          *fakeUsersRepo
	refreshTokens  *fakeRefreshRepo
	passwordResets *fakeResetRepo
	vehicles       *fakeVehiclesRepo
	serviceRecords *fakeServiceRecordsRepo
	expenses       *fakeExpensesRepo
	reminders      *fakeRemindersRepo
	workshops      *fakeWorkshopsRepo
	bookings       *fakeBookingsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.users }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository {
	return m.refreshTokens
}
func (m *fakeRepoManager) PasswordResets(db dbx.DBTX) passwordresetsrepo.Repository {
	return m.passwordResets
}
func (m *fakeRepoManager) Vehicles(db dbx.DBTX) vehiclesrepo.Repository { return m.vehicles }
func (m *fakeRepoManager) ServiceRecords(db dbx.DBTX) servicerecordsrepo.Repository {
	return m.serviceRecords
}
func (m *fakeRepoManager) Expenses(db dbx.DBTX) expensesrepo.Repository   { return m.expenses }
func (m *fakeRepoManager) Reminders(db dbx.DBTX) remindersrepo.Repository { return m.reminders }
func (m *fakeRepoManager) Workshops(db dbx.DBTX) workshopsrepo.Repository { return m.workshops }
func (m *fakeRepoManager) Bookings(db dbx.DBTX) bookingsrepo.Repository   { return m.bookings }
