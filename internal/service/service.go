package service

import (
	"context"

	"secondserve-backend/internal/domain"
)

type AuthService interface {
	RegisterDonor(ctx context.Context, username, email, phone, password string) (*domain.Donor, error)
	RegisterOrganization(ctx context.Context, username, email, phone, password string) (*domain.Organization, error)
	// Authenticate resolves one credential pair against both principal
	// tables, donors first. See authService.Authenticate for the
	// tie-break contract.
	Authenticate(ctx context.Context, username, password string) (domain.Principal, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type SessionService interface {
	Issue(ctx context.Context, p domain.Principal) (*domain.Session, error)
	// Resolve reloads the principal referenced by a session token.
	// Any failure (unknown token, expired session, deleted principal)
	// comes back as ErrSessionInvalid: the caller treats it as
	// not-authenticated, never as a crash.
	Resolve(ctx context.Context, token string) (domain.Principal, error)
	Destroy(ctx context.Context, token string) error
}

type DonorService interface {
	Get(ctx context.Context, id int32) (*domain.Donor, error)
	UpdateProfile(ctx context.Context, id int32, patch domain.DonorPatch) error
	Delete(ctx context.Context, id int32) error
}

type OrganizationService interface {
	List(ctx context.Context) ([]domain.Organization, error)
	Get(ctx context.Context, id int32) (*domain.Organization, error)
	// SubmitVerification applies the provided details and forces the
	// verification status to pending, discarding any earlier decision.
	SubmitVerification(ctx context.Context, orgID int32, patch domain.OrganizationPatch) error
	UpdateProfile(ctx context.Context, orgID int32, patch domain.OrganizationPatch) error
	Delete(ctx context.Context, id int32) error
}

type DonationService interface {
	Create(ctx context.Context, donorID int32, d *domain.Donation) error
	Accept(ctx context.Context, orgID, donationID int32) (*domain.Donation, error)
	Reject(ctx context.Context, orgID, donationID int32) (*domain.Donation, error)
	MarkReceived(ctx context.Context, orgID, donationID int32) (*domain.Donation, error)
	ListByDonor(ctx context.Context, donorID int32) ([]domain.Donation, error)
	ListByOrganization(ctx context.Context, orgID int32) ([]domain.Donation, error)
}

type AdminService interface {
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	ListOrganizationsByStatus(ctx context.Context, status domain.OrgStatus) ([]domain.Organization, error)
	Verify(ctx context.Context, orgID int32) (*domain.Organization, error)
	Reject(ctx context.Context, orgID int32) (*domain.Organization, error)
}

type EmailService interface {
	SendVerificationDecision(ctx context.Context, email, name string, status domain.OrgStatus) error
	SendDonationStatusNotification(ctx context.Context, email, name, foodType string, status domain.DonationStatus) error
	SendPasswordReset(ctx context.Context, email, name, resetURL string) error
	SendPickupReminder(ctx context.Context, email, name, foodType, pickupDate, pickupTime string) error
}
