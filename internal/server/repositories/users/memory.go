package users

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/vaccinehub/internal/common"
	"github.com/dmitrijs2005/vaccinehub/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps users in a map keyed by lowercased email.
// The check and the insert happen under one lock, so it rejects concurrent
// duplicates the same way the unique index does in PostgreSQL.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byEmail: make(map[string]models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	key := strings.ToLower(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[key]; ok {
		return nil, common.ErrDuplicateEmail
	}

	user.ID = uuid.NewString()
	r.byEmail[key] = *user

	return user, nil
}

func (r *InMemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}
