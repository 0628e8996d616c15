// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring repository constructors and schema migrations (goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dsavelev/garagekeeper/internal/dbx"
	"github.com/dsavelev/garagekeeper/internal/server/migrations"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/bookings"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/expenses"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/passwordresets"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/refreshtokens"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/reminders"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/servicerecords"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/users"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/vehicles"
	"github.com/dsavelev/garagekeeper/internal/server/repositories/workshops"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) PasswordResets(db dbx.DBTX) passwordresets.Repository {
	return passwordresets.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Vehicles(db dbx.DBTX) vehicles.Repository {
	return vehicles.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) ServiceRecords(db dbx.DBTX) servicerecords.Repository {
	return servicerecords.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Expenses(db dbx.DBTX) expenses.Repository {
	return expenses.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Reminders(db dbx.DBTX) reminders.Repository {
	return reminders.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Workshops(db dbx.DBTX) workshops.Repository {
	return workshops.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Bookings(db dbx.DBTX) bookings.Repository {
	return bookings.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
