// Package identity provides account creation for imported businesses.
// The directory only needs "create user with email+password"; session
// handling lives with the identity provider, not here.
package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/business-directory-api/internal/database"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Provider creates login accounts for business owners
type Provider interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
}

// pgProvider stores accounts in the accounts table with bcrypt hashes
type pgProvider struct {
	db  *database.DB
	log zerolog.Logger
}

// NewProvider creates a database-backed identity provider
func NewProvider(db *database.DB, log zerolog.Logger) Provider {
	return &pgProvider{
		db:  db,
		log: log.With().Str("component", "identity").Logger(),
	}
}

// CreateAccount creates an account and returns its id. A duplicate
// email is an error; callers treat it as a row-level failure and move on.
func (p *pgProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO accounts (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = p.db.ExecContext(ctx, query, id, email, string(hash), time.Now())
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return "", fmt.Errorf("email %s is already registered", email)
		}
		return "", err
	}

	p.log.Debug().Str("account_id", id).Str("email", email).Msg("Account created")
	return id, nil
}
