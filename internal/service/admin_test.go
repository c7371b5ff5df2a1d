package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"secondserve-backend/internal/domain"
)

func newAdminFixture(t *testing.T) (*mockOrgRepo, *mockEmailService, AdminService) {
	t.Helper()
	orgs := new(mockOrgRepo)
	email := new(mockEmailService)
	return orgs, email, NewAdminService(orgs, email)
}

func orgWithStatus(status domain.OrgStatus) *domain.Organization {
	return &domain.Organization{
		ID:       5,
		Username: "shelter",
		Email:    "shelter@example.com",
		Status:   status,
	}
}

func TestVerify_PendingOrganization(t *testing.T) {
	orgs, email, svc := newAdminFixture(t)

	orgs.On("GetByID", mock.Anything, int32(5)).Return(orgWithStatus(domain.OrgStatusPending), nil)
	orgs.On("UpdateStatus", mock.Anything, int32(5), domain.OrgStatusPending, domain.OrgStatusVerified).
		Return(true, nil)
	email.On("SendVerificationDecision", mock.Anything, "shelter@example.com", "shelter", domain.OrgStatusVerified).
		Return(nil)

	org, err := svc.Verify(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.OrgStatusVerified, org.Status)
}

func TestVerify_ReversesEarlierRejection(t *testing.T) {
	orgs, email, svc := newAdminFixture(t)

	orgs.On("GetByID", mock.Anything, int32(5)).Return(orgWithStatus(domain.OrgStatusRejected), nil)
	orgs.On("UpdateStatus", mock.Anything, int32(5), domain.OrgStatusRejected, domain.OrgStatusVerified).
		Return(true, nil)
	email.On("SendVerificationDecision", mock.Anything, mock.Anything, mock.Anything, domain.OrgStatusVerified).
		Return(nil)

	org, err := svc.Verify(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.OrgStatusVerified, org.Status)
}

func TestReject_RevokesEarlierApproval(t *testing.T) {
	orgs, email, svc := newAdminFixture(t)

	orgs.On("GetByID", mock.Anything, int32(5)).Return(orgWithStatus(domain.OrgStatusVerified), nil)
	orgs.On("UpdateStatus", mock.Anything, int32(5), domain.OrgStatusVerified, domain.OrgStatusRejected).
		Return(true, nil)
	email.On("SendVerificationDecision", mock.Anything, mock.Anything, mock.Anything, domain.OrgStatusRejected).
		Return(nil)

	org, err := svc.Reject(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.OrgStatusRejected, org.Status)
}

func TestVerify_IncompleteOrganization(t *testing.T) {
	orgs, _, svc := newAdminFixture(t)

	orgs.On("GetByID", mock.Anything, int32(5)).Return(orgWithStatus(domain.OrgStatusIncomplete), nil)

	_, err := svc.Verify(context.Background(), 5)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	orgs.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerify_AlreadyVerifiedIsNoOp(t *testing.T) {
	orgs, email, svc := newAdminFixture(t)

	orgs.On("GetByID", mock.Anything, int32(5)).Return(orgWithStatus(domain.OrgStatusVerified), nil)

	org, err := svc.Verify(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.OrgStatusVerified, org.Status)
	orgs.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	email.AssertNotCalled(t, "SendVerificationDecision", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerify_LostRace(t *testing.T) {
	orgs, _, svc := newAdminFixture(t)

	orgs.On("GetByID", mock.Anything, int32(5)).Return(orgWithStatus(domain.OrgStatusPending), nil)
	orgs.On("UpdateStatus", mock.Anything, int32(5), domain.OrgStatusPending, domain.OrgStatusVerified).
		Return(false, nil)

	_, err := svc.Verify(context.Background(), 5)
	assert.ErrorIs(t, err, ErrConflictingTransition)
}
