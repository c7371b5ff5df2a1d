package service

import (
	"context"
	"errors"
	"fmt"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/repository"
	"secondserve-backend/internal/utils"
)

type donorService struct {
	donors repository.DonorRepository
}

func NewDonorService(donors repository.DonorRepository) DonorService {
	return &donorService{donors: donors}
}

func (s *donorService) Get(ctx context.Context, id int32) (*domain.Donor, error) {
	return s.donors.GetByID(ctx, id)
}

func (s *donorService) UpdateProfile(ctx context.Context, id int32, patch domain.DonorPatch) error {
	if patch.Phone != nil && !utils.ValidPhone(*patch.Phone) {
		return fmt.Errorf("%w: phone must be 10 digits", ErrInvalidInput)
	}
	if err := s.donors.UpdateProfile(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrDuplicateCredential
		}
		return fmt.Errorf("failed to update donor: %w", err)
	}
	return nil
}

func (s *donorService) Delete(ctx context.Context, id int32) error {
	return s.donors.Delete(ctx, id)
}
