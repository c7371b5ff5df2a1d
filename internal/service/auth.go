package service

import (
	"context"
	"errors"
	"fmt"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/repository"
	"secondserve-backend/internal/security"
	"secondserve-backend/internal/utils"
)

// minPasswordLength applies when a password is chosen through the
// reset flow.
const minPasswordLength = 6

// credentialLookup fetches one candidate principal plus its stored
// password hash from a single table.
type credentialLookup func(ctx context.Context, username string) (domain.Principal, string, error)

type authService struct {
	donors  repository.DonorRepository
	orgs    repository.OrganizationRepository
	tokens  security.TokenManager
	email   EmailService
	baseURL string
	lookups []credentialLookup
}

func NewAuthService(
	donors repository.DonorRepository,
	orgs repository.OrganizationRepository,
	tokens security.TokenManager,
	email EmailService,
	baseURL string,
) AuthService {
	s := &authService{
		donors:  donors,
		orgs:    orgs,
		tokens:  tokens,
		email:   email,
		baseURL: baseURL,
	}
	// Lookup order is the tie-break: a username present in both tables
	// always resolves to the donor record.
	s.lookups = []credentialLookup{
		func(ctx context.Context, username string) (domain.Principal, string, error) {
			d, err := donors.GetByUsername(ctx, username)
			if err != nil {
				return nil, "", err
			}
			return d, d.PasswordHash, nil
		},
		func(ctx context.Context, username string) (domain.Principal, string, error) {
			o, err := orgs.GetByUsername(ctx, username)
			if err != nil {
				return nil, "", err
			}
			return o, o.PasswordHash, nil
		},
	}
	return s
}

func (s *authService) RegisterDonor(ctx context.Context, username, email, phone, password string) (*domain.Donor, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrInvalidInput
	}
	if !utils.ValidPhone(phone) {
		return nil, fmt.Errorf("%w: phone must be 10 digits", ErrInvalidInput)
	}

	// A collision on either field alone is disqualifying.
	if _, err := s.donors.GetByUsernameOrEmail(ctx, username, email); err == nil {
		return nil, ErrDuplicateCredential
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing donor: %w", err)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	donor := &domain.Donor{
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         domain.RoleDonor,
	}
	if err := s.donors.Create(ctx, donor); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateCredential
		}
		return nil, fmt.Errorf("failed to create donor: %w", err)
	}
	logger.Info("Donor registered", "donor_id", donor.ID, "username", donor.Username)
	return donor, nil
}

func (s *authService) RegisterOrganization(ctx context.Context, username, email, phone, password string) (*domain.Organization, error) {
	if username == "" || email == "" || phone == "" || password == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.orgs.GetByUsernameOrEmail(ctx, username, email); err == nil {
		return nil, ErrDuplicateCredential
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	org := &domain.Organization{
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Status:       domain.OrgStatusIncomplete,
	}
	if err := s.orgs.Create(ctx, org); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateCredential
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	logger.Info("Organization registered", "organization_id", org.ID, "username", org.Username)
	return org, nil
}

// Authenticate walks the principal tables in fixed order and returns the
// first record whose password matches. A username that exists in one
// table with a wrong password still falls through to the next table.
func (s *authService) Authenticate(ctx context.Context, username, password string) (domain.Principal, error) {
	for _, lookup := range s.lookups {
		p, hash, err := lookup(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to look up credentials: %w", err)
		}
		if security.CheckPassword(hash, password) {
			return p, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	p, err := s.findByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Do not reveal whether the address is registered.
			logger.Info("Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to look up email: %w", err)
	}

	token, err := s.tokens.GenerateResetToken(p)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	resetURL := fmt.Sprintf("%s/reset/%s", s.baseURL, token)
	if err := s.email.SendPasswordReset(ctx, p.PrincipalEmail(), p.PrincipalUsername(), resetURL); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	claims, err := s.tokens.ValidateResetToken(token)
	if err != nil {
		return ErrInvalidCredentials
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	switch claims.Model {
	case domain.ModelDonor:
		err = s.donors.UpdatePassword(ctx, claims.PrincipalID, hash)
	case domain.ModelOrg:
		err = s.orgs.UpdatePassword(ctx, claims.PrincipalID, hash)
	default:
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	logger.Info("Password reset completed", "principal_id", claims.PrincipalID, "model", claims.Model)
	return nil
}

// findByEmail checks the donor table first, mirroring the login order.
func (s *authService) findByEmail(ctx context.Context, email string) (domain.Principal, error) {
	d, err := s.donors.GetByEmail(ctx, email)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.orgs.GetByEmail(ctx, email)
}
