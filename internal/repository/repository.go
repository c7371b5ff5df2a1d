package repository

import (
	"context"
	"errors"
	"time"

	"secondserve-backend/internal/domain"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (username, email or phone).
	ErrDuplicate = errors.New("duplicate record")
)

type DonorRepository interface {
	Create(ctx context.Context, d *domain.Donor) error
	GetByID(ctx context.Context, id int32) (*domain.Donor, error)
	GetByUsername(ctx context.Context, username string) (*domain.Donor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Donor, error)
	// GetByUsernameOrEmail matches on either field. Registration treats
	// any hit as a disqualifying collision.
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Donor, error)
	UpdateProfile(ctx context.Context, id int32, patch domain.DonorPatch) error
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
	Delete(ctx context.Context, id int32) error
}

type OrganizationRepository interface {
	Create(ctx context.Context, o *domain.Organization) error
	GetByID(ctx context.Context, id int32) (*domain.Organization, error)
	GetByUsername(ctx context.Context, username string) (*domain.Organization, error)
	GetByEmail(ctx context.Context, email string) (*domain.Organization, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
	ListByStatus(ctx context.Context, status domain.OrgStatus) ([]domain.Organization, error)
	UpdateProfile(ctx context.Context, id int32, patch domain.OrganizationPatch) error
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
	// SetStatus overwrites the verification status unconditionally.
	// Used by the details-submission path, which forces pending
	// regardless of any earlier decision.
	SetStatus(ctx context.Context, id int32, status domain.OrgStatus) error
	// UpdateStatus is a compare-and-set: the write applies only while
	// the stored status still equals expected. Returns false when zero
	// rows matched.
	UpdateStatus(ctx context.Context, id int32, expected, target domain.OrgStatus) (bool, error)
	Delete(ctx context.Context, id int32) error
}

type DonationRepository interface {
	Create(ctx context.Context, d *domain.Donation) error
	GetByID(ctx context.Context, id int32) (*domain.Donation, error)
	ListByDonor(ctx context.Context, donorID int32) ([]domain.Donation, error)
	ListByOrganization(ctx context.Context, orgID int32) ([]domain.Donation, error)
	// ListAcceptedForDate returns accepted donations whose pickup date
	// equals date (YYYY-MM-DD). Used by the reminder job.
	ListAcceptedForDate(ctx context.Context, date string) ([]domain.Donation, error)
	// UpdateStatus is a compare-and-set on the status column; see
	// OrganizationRepository.UpdateStatus.
	UpdateStatus(ctx context.Context, id int32, expected, target domain.DonationStatus) (bool, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	// Touch extends a session's expiry (sliding lifetime).
	Touch(ctx context.Context, token string, expiresAt time.Time) error
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
