package service

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/service"
	"github.com/BruksfildServices01/salon-api/internal/dto"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute lists services ordered by name. A nil active lists all of them.
func (uc *ListServices) Execute(ctx context.Context, active *bool) ([]models.Service, error) {
	services, err := uc.repo.List(ctx, active)
	if err != nil {
		return nil, storeError("failed_to_list_services", "failed to list services", err)
	}
	return services, nil
}

// ======================================================
// GET
// ======================================================

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, id uint) (*models.Service, error) {
	svc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, id, "failed_to_get_service", "failed to get service")
	}
	return svc, nil
}

// ======================================================
// POPULAR
// ======================================================

type PopularServices struct {
	repo domain.Repository
}

func NewPopularServices(repo domain.Repository) *PopularServices {
	return &PopularServices{repo: repo}
}

// Execute ranks active services by completed bookings. Out of range limits
// fall back to the default or the cap.
func (uc *PopularServices) Execute(ctx context.Context, limit int) ([]dto.PopularServiceDTO, error) {
	rows, err := uc.repo.Popular(ctx, domain.NormalizeLimit(limit))
	if err != nil {
		return nil, storeError("failed_to_get_popular_services", "failed to get popular services", err)
	}
	return rows, nil
}

func mapRepoError(err error, id uint, code, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFoundID("Service", id)
	}
	return storeError(code, message, err)
}
