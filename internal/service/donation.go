package service

import (
	"context"
	"fmt"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/repository"
)

type donationService struct {
	donations repository.DonationRepository
	donors    repository.DonorRepository
	orgs      repository.OrganizationRepository
	email     EmailService
}

func NewDonationService(
	donations repository.DonationRepository,
	donors repository.DonorRepository,
	orgs repository.OrganizationRepository,
	email EmailService,
) DonationService {
	return &donationService{
		donations: donations,
		donors:    donors,
		orgs:      orgs,
		email:     email,
	}
}

func (s *donationService) Create(ctx context.Context, donorID int32, d *domain.Donation) error {
	if d.OrganizationID == 0 || d.FoodType == "" || d.PickupAddress == "" ||
		d.PickupDate == "" || d.PickupTime == "" || d.DonorPhone == "" {
		return ErrInvalidInput
	}
	// The donor comes from the session, never from the form.
	d.DonorID = donorID

	if _, err := s.orgs.GetByID(ctx, d.OrganizationID); err != nil {
		return fmt.Errorf("failed to load organization: %w", err)
	}

	if err := s.donations.Create(ctx, d); err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}
	logger.Info("Donation created", "donation_id", d.ID, "donor_id", d.DonorID, "organization_id", d.OrganizationID)
	return nil
}

func (s *donationService) Accept(ctx context.Context, orgID, donationID int32) (*domain.Donation, error) {
	return s.transition(ctx, orgID, donationID, domain.DonationStatusAccepted)
}

func (s *donationService) Reject(ctx context.Context, orgID, donationID int32) (*domain.Donation, error) {
	return s.transition(ctx, orgID, donationID, domain.DonationStatusRejected)
}

func (s *donationService) MarkReceived(ctx context.Context, orgID, donationID int32) (*domain.Donation, error) {
	return s.transition(ctx, orgID, donationID, domain.DonationStatusReceived)
}

// transition applies one guarded edge of the donation state machine.
// Re-applying a transition already in its target state is a no-op
// success. The write itself is a compare-and-set keyed on the status we
// just read, so two racing requests cannot both win.
func (s *donationService) transition(ctx context.Context, orgID, donationID int32, target domain.DonationStatus) (*domain.Donation, error) {
	d, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load donation: %w", err)
	}

	// Only the organization named on the record may drive it.
	if d.OrganizationID != orgID {
		return nil, ErrUnauthorized
	}

	if d.Status == target {
		return d, nil
	}
	if !d.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	applied, err := s.donations.UpdateStatus(ctx, donationID, d.Status, target)
	if err != nil {
		return nil, fmt.Errorf("failed to update donation status: %w", err)
	}
	if !applied {
		return nil, ErrConflictingTransition
	}
	d.Status = target
	logger.Info("Donation status changed", "donation_id", d.ID, "status", d.Status)

	s.notifyDonor(ctx, d)
	return d, nil
}

// notifyDonor is best effort; a failed email never rolls back a
// transition.
func (s *donationService) notifyDonor(ctx context.Context, d *domain.Donation) {
	donor, err := s.donors.GetByID(ctx, d.DonorID)
	if err != nil {
		logger.Warn("Failed to load donor for notification", "donor_id", d.DonorID, "error", err)
		return
	}
	if err := s.email.SendDonationStatusNotification(ctx, donor.Email, donor.Username, d.FoodType, d.Status); err != nil {
		logger.Warn("Failed to send donation notification", "donation_id", d.ID, "error", err)
	}
}

func (s *donationService) ListByDonor(ctx context.Context, donorID int32) ([]domain.Donation, error) {
	return s.donations.ListByDonor(ctx, donorID)
}

func (s *donationService) ListByOrganization(ctx context.Context, orgID int32) ([]domain.Donation, error) {
	return s.donations.ListByOrganization(ctx, orgID)
}
