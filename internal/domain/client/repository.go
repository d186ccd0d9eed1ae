package client

import (
	"context"

	"github.com/BruksfildServices01/salon-api/internal/dto"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Client, error)

	// GetByID returns ErrNotFound when the id does not exist.
	GetByID(ctx context.Context, id uint) (*models.Client, error)

	// Search matches term case-insensitively against name, email and phone.
	Search(ctx context.Context, term string) ([]models.Client, error)

	// Create returns ErrDuplicateEmail on a unique email violation.
	Create(ctx context.Context, c *models.Client) error

	// Update writes only the given columns and bumps updated_at.
	Update(ctx context.Context, id uint, columns map[string]any) (*models.Client, error)

	// Delete returns the removed row.
	Delete(ctx context.Context, id uint) (*models.Client, error)

	// -------- Appointments (read-only) --------
	CountAppointments(ctx context.Context, clientID uint) (int64, error)

	ListAppointments(ctx context.Context, clientID uint) ([]dto.ClientAppointmentDTO, error)
}
