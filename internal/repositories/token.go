package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-articles-api/internal/logger"
	"github.com/sbilibin2017/gw-articles-api/internal/models"
)

type TokenReadRepository struct {
	db *sqlx.DB
}

func NewTokenReadRepository(db *sqlx.DB) *TokenReadRepository {
	return &TokenReadRepository{db: db}
}

// GetByToken returns the auth token record for the given token string,
// or nil if the token was never issued or has been revoked.
func (r *TokenReadRepository) GetByToken(ctx context.Context, token string) (*models.AuthTokenDB, error) {
	const query = `
		SELECT token, user_id, created_at
		FROM auth_tokens
		WHERE token = $1
	`

	var record models.AuthTokenDB
	err := r.db.GetContext(ctx, &record, query, token)

	// Log with query in single line; the token itself is not logged
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

type TokenWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTokenWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TokenWriteRepository {
	return &TokenWriteRepository{db: db, txGetter: txGetter}
}

// Save persists a freshly issued token bound to a user.
func (r *TokenWriteRepository) Save(ctx context.Context, token string, userID uuid.UUID) error {
	query := `
		INSERT INTO auth_tokens (token, user_id, created_at)
		VALUES ($1, $2, NOW())
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, token, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete revokes a token. Returns false if the token did not exist.
func (r *TokenWriteRepository) Delete(ctx context.Context, token string) (bool, error) {
	query := `
		DELETE FROM auth_tokens
		WHERE token = $1
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, token)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
