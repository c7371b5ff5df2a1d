package service

import (
	"context"
	"fmt"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/repository"
)

type adminService struct {
	orgs  repository.OrganizationRepository
	email EmailService
}

func NewAdminService(orgs repository.OrganizationRepository, email EmailService) AdminService {
	return &adminService{orgs: orgs, email: email}
}

func (s *adminService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	return s.orgs.List(ctx)
}

func (s *adminService) ListOrganizationsByStatus(ctx context.Context, status domain.OrgStatus) ([]domain.Organization, error) {
	return s.orgs.ListByStatus(ctx, status)
}

func (s *adminService) Verify(ctx context.Context, orgID int32) (*domain.Organization, error) {
	return s.decide(ctx, orgID, domain.OrgStatusVerified)
}

func (s *adminService) Reject(ctx context.Context, orgID int32) (*domain.Organization, error) {
	return s.decide(ctx, orgID, domain.OrgStatusRejected)
}

// decide applies an admin verification decision. Decisions are
// reversible: verified and rejected can each replace the other. An
// organization that never submitted details stays incomplete.
func (s *adminService) decide(ctx context.Context, orgID int32, target domain.OrgStatus) (*domain.Organization, error) {
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}

	if org.Status == target {
		return org, nil
	}
	if !org.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	applied, err := s.orgs.UpdateStatus(ctx, orgID, org.Status, target)
	if err != nil {
		return nil, fmt.Errorf("failed to update verification status: %w", err)
	}
	if !applied {
		return nil, ErrConflictingTransition
	}
	org.Status = target
	logger.Info("Verification decision applied", "organization_id", org.ID, "status", org.Status)

	if err := s.email.SendVerificationDecision(ctx, org.Email, org.Username, org.Status); err != nil {
		logger.Warn("Failed to send verification decision email", "organization_id", org.ID, "error", err)
	}
	return org, nil
}
