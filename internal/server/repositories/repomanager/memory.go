package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vaccinehub/internal/dbx"
	"github.com/dmitrijs2005/vaccinehub/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves one shared in-memory users repository
// regardless of the handle it is given. There is no schema to migrate.
type InMemoryRepositoryManager struct {
	users *users.InMemoryRepository
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}
