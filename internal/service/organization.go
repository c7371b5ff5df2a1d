package service

import (
	"context"
	"errors"
	"fmt"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/repository"
)

type organizationService struct {
	orgs repository.OrganizationRepository
}

func NewOrganizationService(orgs repository.OrganizationRepository) OrganizationService {
	return &organizationService{orgs: orgs}
}

func (s *organizationService) List(ctx context.Context) ([]domain.Organization, error) {
	return s.orgs.List(ctx)
}

func (s *organizationService) Get(ctx context.Context, id int32) (*domain.Organization, error) {
	return s.orgs.GetByID(ctx, id)
}

// SubmitVerification stores the vetting details and forces the status to
// pending, whatever it was before. Resubmission discards an earlier
// verified or rejected decision.
func (s *organizationService) SubmitVerification(ctx context.Context, orgID int32, patch domain.OrganizationPatch) error {
	if patch.Image != nil && *patch.Image == "" {
		img := domain.DefaultOrgImage
		patch.Image = &img
	}
	if patch.ChildrenCount != nil && *patch.ChildrenCount < 0 {
		return fmt.Errorf("%w: children count must be >= 0", ErrInvalidInput)
	}

	if err := s.updateProfile(ctx, orgID, patch); err != nil {
		return err
	}
	if err := s.orgs.SetStatus(ctx, orgID, domain.OrgStatusPending); err != nil {
		return fmt.Errorf("failed to set verification status: %w", err)
	}
	logger.Info("Verification submitted", "organization_id", orgID)
	return nil
}

func (s *organizationService) UpdateProfile(ctx context.Context, orgID int32, patch domain.OrganizationPatch) error {
	if patch.Image != nil && *patch.Image == "" {
		img := domain.DefaultOrgImage
		patch.Image = &img
	}
	return s.updateProfile(ctx, orgID, patch)
}

func (s *organizationService) updateProfile(ctx context.Context, orgID int32, patch domain.OrganizationPatch) error {
	if err := s.orgs.UpdateProfile(ctx, orgID, patch); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrDuplicateCredential
		}
		return fmt.Errorf("failed to update organization: %w", err)
	}
	return nil
}

func (s *organizationService) Delete(ctx context.Context, id int32) error {
	return s.orgs.Delete(ctx, id)
}
