package service

import (
	"context"

	"github.com/BruksfildServices01/salon-api/internal/dto"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type Repository interface {
	// List filters by is_active when active is not nil.
	List(ctx context.Context, active *bool) ([]models.Service, error)

	// GetByID returns ErrNotFound when the id does not exist.
	GetByID(ctx context.Context, id uint) (*models.Service, error)

	Create(ctx context.Context, s *models.Service) error

	Update(ctx context.Context, id uint, columns map[string]any) (*models.Service, error)

	SetActive(ctx context.Context, id uint, active bool) (*models.Service, error)

	// Delete removes the row permanently and returns it.
	Delete(ctx context.Context, id uint) (*models.Service, error)

	// -------- Appointments (read-only) --------

	// CountActiveAppointments ignores cancelled and no-show appointments.
	CountActiveAppointments(ctx context.Context, serviceID uint) (int64, error)

	Popular(ctx context.Context, limit int) ([]dto.PopularServiceDTO, error)
}
