package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepository
	donors   repository.DonorRepository
	orgs     repository.OrganizationRepository
	ttl      time.Duration
}

func NewSessionService(
	sessions repository.SessionRepository,
	donors repository.DonorRepository,
	orgs repository.OrganizationRepository,
	ttl time.Duration,
) SessionService {
	return &sessionService{
		sessions: sessions,
		donors:   donors,
		orgs:     orgs,
		ttl:      ttl,
	}
}

func (s *sessionService) Issue(ctx context.Context, p domain.Principal) (*domain.Session, error) {
	now := time.Now()
	sess := &domain.Session{
		Token:     uuid.New().String(),
		Reference: domain.ReferenceFor(p),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (domain.Principal, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	now := time.Now()
	if sess.Expired(now) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionInvalid
	}

	// Sliding lifetime: any authenticated request pushes expiry out.
	if err := s.sessions.Touch(ctx, token, now.Add(s.ttl)); err != nil {
		logger.Warn("Failed to touch session", "error", err)
	}

	p, err := s.decode(ctx, sess.Reference)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The principal was deleted after the session was issued.
			_ = s.sessions.Delete(ctx, token)
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("failed to resolve session principal: %w", err)
	}
	return p, nil
}

func (s *sessionService) Destroy(ctx context.Context, token string) error {
	err := s.sessions.Delete(ctx, token)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// decode dispatches a session reference to the store named by its model
// tag. An unknown tag is treated the same as a dangling id.
func (s *sessionService) decode(ctx context.Context, ref domain.SessionReference) (domain.Principal, error) {
	switch ref.Model {
	case domain.ModelDonor:
		return s.donors.GetByID(ctx, ref.ID)
	case domain.ModelOrg:
		return s.orgs.GetByID(ctx, ref.ID)
	default:
		return nil, repository.ErrNotFound
	}
}
