package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"secondserve-backend/internal/domain"
)

func newDonationFixture(t *testing.T) (*mockDonationRepo, *mockDonorRepo, *mockOrgRepo, *mockEmailService, DonationService) {
	t.Helper()
	donations := new(mockDonationRepo)
	donors := new(mockDonorRepo)
	orgs := new(mockOrgRepo)
	email := new(mockEmailService)
	svc := NewDonationService(donations, donors, orgs, email)
	return donations, donors, orgs, email, svc
}

func pendingDonation(orgID int32) *domain.Donation {
	return &domain.Donation{
		ID:             10,
		DonorID:        1,
		OrganizationID: orgID,
		FoodType:       "Rice and curry",
		Status:         domain.DonationStatusPending,
	}
}

func TestCreateDonation_DonorComesFromSession(t *testing.T) {
	donations, _, orgs, _, svc := newDonationFixture(t)

	orgs.On("GetByID", mock.Anything, int32(7)).Return(&domain.Organization{ID: 7}, nil)
	donations.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.Donation) bool {
		return d.DonorID == 42
	})).Return(nil)

	d := &domain.Donation{
		DonorID:        999, // forged form value, must be overwritten
		OrganizationID: 7,
		FoodType:       "Rice and curry",
		PickupAddress:  "12 Main St",
		PickupDate:     "2026-09-01",
		PickupTime:     "18:00",
		DonorPhone:     "9876543210",
	}
	require.NoError(t, svc.Create(context.Background(), 42, d))
	assert.Equal(t, int32(42), d.DonorID)
}

func TestCreateDonation_MissingFields(t *testing.T) {
	_, _, _, _, svc := newDonationFixture(t)

	err := svc.Create(context.Background(), 1, &domain.Donation{OrganizationID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAccept_PendingDonation(t *testing.T) {
	donations, donors, _, email, svc := newDonationFixture(t)

	donations.On("GetByID", mock.Anything, int32(10)).Return(pendingDonation(7), nil)
	donations.On("UpdateStatus", mock.Anything, int32(10), domain.DonationStatusPending, domain.DonationStatusAccepted).
		Return(true, nil)
	donors.On("GetByID", mock.Anything, int32(1)).Return(&domain.Donor{ID: 1, Email: "sam@example.com", Username: "sam"}, nil)
	email.On("SendDonationStatusNotification", mock.Anything, "sam@example.com", "sam", "Rice and curry", domain.DonationStatusAccepted).
		Return(nil)

	d, err := svc.Accept(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusAccepted, d.Status)
}

func TestAccept_WrongOrganization(t *testing.T) {
	donations, _, _, _, svc := newDonationFixture(t)

	donations.On("GetByID", mock.Anything, int32(10)).Return(pendingDonation(7), nil)

	_, err := svc.Accept(context.Background(), 8, 10)
	assert.ErrorIs(t, err, ErrUnauthorized)
	donations.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccept_AlreadyAcceptedIsNoOp(t *testing.T) {
	donations, _, _, email, svc := newDonationFixture(t)

	d := pendingDonation(7)
	d.Status = domain.DonationStatusAccepted
	donations.On("GetByID", mock.Anything, int32(10)).Return(d, nil)

	got, err := svc.Accept(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusAccepted, got.Status)

	// A no-op re-application writes nothing and notifies nobody.
	donations.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	email.AssertNotCalled(t, "SendDonationStatusNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccept_FromTerminalState(t *testing.T) {
	donations, _, _, _, svc := newDonationFixture(t)

	d := pendingDonation(7)
	d.Status = domain.DonationStatusRejected
	donations.On("GetByID", mock.Anything, int32(10)).Return(d, nil)

	_, err := svc.Accept(context.Background(), 7, 10)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMarkReceived_RequiresAccepted(t *testing.T) {
	donations, _, _, _, svc := newDonationFixture(t)

	donations.On("GetByID", mock.Anything, int32(10)).Return(pendingDonation(7), nil)

	_, err := svc.MarkReceived(context.Background(), 7, 10)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAccept_LostRace(t *testing.T) {
	donations, _, _, _, svc := newDonationFixture(t)

	donations.On("GetByID", mock.Anything, int32(10)).Return(pendingDonation(7), nil)
	donations.On("UpdateStatus", mock.Anything, int32(10), domain.DonationStatusPending, domain.DonationStatusAccepted).
		Return(false, nil)

	_, err := svc.Accept(context.Background(), 7, 10)
	assert.ErrorIs(t, err, ErrConflictingTransition)
}

func TestReject_EmailFailureDoesNotRollBack(t *testing.T) {
	donations, donors, _, email, svc := newDonationFixture(t)

	donations.On("GetByID", mock.Anything, int32(10)).Return(pendingDonation(7), nil)
	donations.On("UpdateStatus", mock.Anything, int32(10), domain.DonationStatusPending, domain.DonationStatusRejected).
		Return(true, nil)
	donors.On("GetByID", mock.Anything, int32(1)).Return(&domain.Donor{ID: 1, Email: "sam@example.com", Username: "sam"}, nil)
	email.On("SendDonationStatusNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	d, err := svc.Reject(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusRejected, d.Status)
}
