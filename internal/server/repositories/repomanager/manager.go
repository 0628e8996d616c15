package repomanager

import (
	"context"
	"database/sql"

	"github.com/dsavelev/garagekeeper/internal/dbx"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/bookings"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/expenses"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/passwordresets"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/refreshtokens"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/reminders"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/servicerecords"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/users"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/vehicles"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/workshops"
)

// RepositoryManager vends repository implementations bound to a DBTX, so a
// service can run several repositories inside one transaction by handing
// them the same *sql.Tx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	PasswordResets(db dbx.DBTX) passwordresets.Repository
	Vehicles(db dbx.DBTX) vehicles.Repository
	ServiceRecords(db dbx.DBTX) servicerecords.Repository
	Expenses(db dbx.DBTX) expenses.Repository
	Reminders(db dbx.DBTX) reminders.Repository
	Workshops(db dbx.DBTX) workshops.Repository
	Bookings(db dbx.DBTX) bookings.Repository
}
