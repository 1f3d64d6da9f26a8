// Package services contains server-side business logic. This file implements
// UserService, which registers users and checks their credentials.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/vaccinehub/internal/common"
	"github.com/dmitrijs2005/vaccinehub/internal/server/auth"
	"github.com/dmitrijs2005/vaccinehub/internal/server/models"
	"github.com/dmitrijs2005/vaccinehub/internal/server/repositories/repomanager"
)

// Required request keys, checked left to right; the first absent one is reported.
var (
	registerFields = []string{"password", "firstName", "lastName", "email", "location", "date"}
	loginFields    = []string{"email", "password"}
)

// dummyPassword is hashed once and verified against when a login names an
// unknown email, so both failure paths cost one bcrypt comparison.
const dummyPassword = "vaccinehub-no-such-user"

// UserService provides authentication-related operations:
// - Register: validate and create users
// - Login: verify credentials
// - FetchByEmail: raw lookup by normalized email
//
// Every value it returns to callers is a models.PublicUser; the stored
// password digest never leaves this package.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	now         func() time.Time

	dummyOnce   sync.Once
	dummyDigest string
}

// NewUserService constructs a UserService. db may be nil when the repository
// manager does not need a connection (in-memory mode).
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h auth.PasswordHasher) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      h,
		now:         time.Now,
	}
}

// Register validates creds, stores a new user with a hashed password and a
// lowercased email, and returns its public projection.
func (s *UserService) Register(ctx context.Context, creds models.Credentials) (*models.PublicUser, error) {
	if err := requireFields(creds, registerFields); err != nil {
		return nil, err
	}

	email := creds["email"]
	if strings.Index(email, "@") <= 0 {
		return nil, fmt.Errorf("%w: invalid email", common.ErrInvalidInput)
	}

	// fast path only; the store's unique index has the final word
	_, err := s.FetchByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, duplicateEmail(email)
	case !errors.Is(err, common.ErrorNotFound):
		return nil, err
	}

	digest, err := s.hasher.Hash(creds["password"])
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: error hashing password: %v", common.ErrorInternal, err)
	}

	date := creds["date"]
	if date == "" {
		date = s.now().UTC().Format(common.DateLayout)
	}

	user := &models.User{
		Password:  digest,
		FirstName: creds["firstName"],
		LastName:  creds["lastName"],
		Email:     strings.ToLower(email),
		Location:  creds["location"],
		Date:      date,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, duplicateEmail(email)
		}
		return nil, fmt.Errorf("%w: error creating user: %v", common.ErrorInternal, err)
	}

	return u.Public(), nil
}

// Login checks creds against the stored digest. An unknown email and a wrong
// password produce the same common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, creds models.Credentials) (*models.PublicUser, error) {
	if err := requireFields(creds, loginFields); err != nil {
		return nil, err
	}

	user, err := s.FetchByEmail(ctx, creds["email"])
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = s.hasher.Verify(creds["password"], s.getDummyDigest())
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(creds["password"], user.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: error verifying password: %v", common.ErrorInternal, err)
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	return user.Public(), nil
}

// FetchByEmail returns the raw stored record for email, digest included, or
// common.ErrorNotFound. The result must not be handed to callers outside the
// service; use User.Public.
func (s *UserService) FetchByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: no email provided", common.ErrInvalidInput)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: error searching user: %v", common.ErrorInternal, err)
	}
	return user, nil
}

// --- helpers below ---

func requireFields(creds models.Credentials, fields []string) error {
	for _, f := range fields {
		if _, ok := creds[f]; !ok {
			return common.MissingField(f)
		}
	}
	return nil
}

func duplicateEmail(email string) error {
	return fmt.Errorf("%w: %s", common.ErrDuplicateEmail, email)
}

func (s *UserService) getDummyDigest() string {
	s.dummyOnce.Do(func() {
		s.dummyDigest, _ = s.hasher.Hash(dummyPassword)
	})
	return s.dummyDigest
}
