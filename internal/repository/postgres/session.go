package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/repository"
)

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	payload, err := json.Marshal(s.Reference)
	if err != nil {
		return fmt.Errorf("failed to encode session payload: %w", err)
	}
	query := `INSERT INTO sessions (token, payload, created_at, expires_at) VALUES ($1, $2, $3, $4)`
	_, err = r.db.ExecContext(ctx, query, s.Token, string(payload), s.CreatedAt, s.ExpiresAt)
	return mapError(err)
}

func (r *sessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	s := &domain.Session{}
	var payload string
	query := `SELECT token, payload, created_at, expires_at FROM sessions WHERE token = $1`
	err := r.db.QueryRowContext(ctx, query, token).Scan(&s.Token, &payload, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		return nil, mapError(err)
	}
	if err := json.Unmarshal([]byte(payload), &s.Reference); err != nil {
		return nil, fmt.Errorf("failed to decode session payload: %w", err)
	}
	return s, nil
}

func (r *sessionRepository) Touch(ctx context.Context, token string, expiresAt time.Time) error {
	query := `UPDATE sessions SET expires_at=$1 WHERE token=$2`
	_, err := r.db.ExecContext(ctx, query, expiresAt, token)
	return mapError(err)
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token=$1`, token)
	return mapError(err)
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < $1`
	logger.DatabaseCall("sessions.delete_expired", query)
	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		logger.DatabaseResult("sessions.delete_expired", 0, err)
		return 0, mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	logger.DatabaseResult("sessions.delete_expired", n, nil)
	return n, nil
}
