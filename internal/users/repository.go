package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pathlight-health/casebook/pkg/repository"
)

// Options configures token issuance for the user system.
type Options struct {
	Secret   []byte
	TokenTTL time.Duration
}

type repo struct {
	db     *sql.DB
	opts   Options
	logger *slog.Logger
}

// New creates a user repository implementing the System interface.
func New(db *sql.DB, opts Options, logger *slog.Logger) System {
	return &repo{
		db:     db,
		opts:   opts,
		logger: logger.With("system", "users"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.PIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}

	insertQ := `
		INSERT INTO users(name, pin_hash)
		VALUES ($1, $2)
		RETURNING id, name, created_at`

	var u User
	err = r.db.QueryRowContext(ctx, insertQ, strings.TrimSpace(cmd.Name), hash).
		Scan(&u.ID, &u.Name, &u.CreatedAt)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user registered", "id", u.ID, "name", u.Name)
	return &u, nil
}

func (r *repo) Login(ctx context.Context, cmd LoginCommand) (*TokenResult, error) {
	selectQ := `
		SELECT name, pin_hash
		FROM users
		WHERE LOWER(name) = LOWER($1)`

	var name string
	var hash []byte
	err := r.db.QueryRowContext(ctx, selectQ, strings.TrimSpace(cmd.Name)).Scan(&name, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(cmd.PIN)); err != nil {
		return nil, ErrBadCredentials
	}

	expires := time.Now().Add(r.opts.TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   name,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString(r.opts.Secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	r.logger.Info("user logged in", "name", name)
	return &TokenResult{
		Token:     signed,
		Name:      name,
		ExpiresAt: expires,
	}, nil
}
