package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/service"
	"github.com/BruksfildServices01/salon-api/internal/models"
	"github.com/BruksfildServices01/salon-api/internal/validators"
)

const msgRequired = "name, duration_minutes and price are required"

var serviceMessages = validators.Messages{
	"*.required":           msgRequired,
	"name.notblank":        msgRequired,
	"duration_minutes.min": "duration_minutes must be greater than 0",
	"duration_minutes.max": "duration_minutes cannot exceed 480 minutes (8 hours)",
	"price.min":            "price cannot be negative",
}

type CreateService struct {
	repo     domain.Repository
	validate *validator.Validate
	audit    *audit.Dispatcher
}

func NewCreateService(
	repo domain.Repository,
	validate *validator.Validate,
	audit *audit.Dispatcher,
) *CreateService {
	return &CreateService{
		repo:     repo,
		validate: validate,
		audit:    audit,
	}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Service, error) {

	in.Normalize()
	if err := uc.validate.Struct(in); err != nil {
		return nil, validators.Translate(err, serviceMessages)
	}

	svc := in.Model()
	if err := uc.repo.Create(ctx, svc); err != nil {
		return nil, mapRepoError(err, 0, "failed_to_create_service", "failed to create service")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}
