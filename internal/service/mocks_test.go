package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/security"
)

type mockDonorRepo struct {
	mock.Mock
}

func (m *mockDonorRepo) Create(ctx context.Context, d *domain.Donor) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDonorRepo) GetByID(ctx context.Context, id int32) (*domain.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *mockDonorRepo) GetByUsername(ctx context.Context, username string) (*domain.Donor, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *mockDonorRepo) GetByEmail(ctx context.Context, email string) (*domain.Donor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *mockDonorRepo) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Donor, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *mockDonorRepo) UpdateProfile(ctx context.Context, id int32, patch domain.DonorPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *mockDonorRepo) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *mockDonorRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockOrgRepo struct {
	mock.Mock
}

func (m *mockOrgRepo) Create(ctx context.Context, o *domain.Organization) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOrgRepo) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *mockOrgRepo) GetByUsername(ctx context.Context, username string) (*domain.Organization, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *mockOrgRepo) GetByEmail(ctx context.Context, email string) (*domain.Organization, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *mockOrgRepo) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Organization, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *mockOrgRepo) List(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *mockOrgRepo) ListByStatus(ctx context.Context, status domain.OrgStatus) ([]domain.Organization, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *mockOrgRepo) UpdateProfile(ctx context.Context, id int32, patch domain.OrganizationPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *mockOrgRepo) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *mockOrgRepo) SetStatus(ctx context.Context, id int32, status domain.OrgStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockOrgRepo) UpdateStatus(ctx context.Context, id int32, expected, target domain.OrgStatus) (bool, error) {
	args := m.Called(ctx, id, expected, target)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrgRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockDonationRepo struct {
	mock.Mock
}

func (m *mockDonationRepo) Create(ctx context.Context, d *domain.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDonationRepo) GetByID(ctx context.Context, id int32) (*domain.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *mockDonationRepo) ListByDonor(ctx context.Context, donorID int32) ([]domain.Donation, error) {
	args := m.Called(ctx, donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

func (m *mockDonationRepo) ListByOrganization(ctx context.Context, orgID int32) ([]domain.Donation, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

func (m *mockDonationRepo) ListAcceptedForDate(ctx context.Context, date string) ([]domain.Donation, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

func (m *mockDonationRepo) UpdateStatus(ctx context.Context, id int32, expected, target domain.DonationStatus) (bool, error) {
	args := m.Called(ctx, id, expected, target)
	return args.Bool(0), args.Error(1)
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSessionRepo) Get(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockSessionRepo) Touch(ctx context.Context, token string, expiresAt time.Time) error {
	args := m.Called(ctx, token, expiresAt)
	return args.Error(0)
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendVerificationDecision(ctx context.Context, email, name string, status domain.OrgStatus) error {
	args := m.Called(ctx, email, name, status)
	return args.Error(0)
}

func (m *mockEmailService) SendDonationStatusNotification(ctx context.Context, email, name, foodType string, status domain.DonationStatus) error {
	args := m.Called(ctx, email, name, foodType, status)
	return args.Error(0)
}

func (m *mockEmailService) SendPasswordReset(ctx context.Context, email, name, resetURL string) error {
	args := m.Called(ctx, email, name, resetURL)
	return args.Error(0)
}

func (m *mockEmailService) SendPickupReminder(ctx context.Context, email, name, foodType, pickupDate, pickupTime string) error {
	args := m.Called(ctx, email, name, foodType, pickupDate, pickupTime)
	return args.Error(0)
}

type mockTokenManager struct {
	mock.Mock
}

func (m *mockTokenManager) GenerateResetToken(p domain.Principal) (string, error) {
	args := m.Called(p)
	return args.String(0), args.Error(1)
}

func (m *mockTokenManager) ValidateResetToken(tokenString string) (*security.ResetClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.ResetClaims), args.Error(1)
}
