package service

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/service"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type UpdateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateService(repo domain.Repository, audit *audit.Dispatcher) *UpdateService {
	return &UpdateService{repo: repo, audit: audit}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	id uint,
	p domain.Patch,
) (*models.Service, error) {

	if err := check(p); err != nil {
		return nil, err
	}

	svc, err := uc.repo.Update(ctx, id, p.Columns())
	if err != nil {
		return nil, mapRepoError(err, id, "failed_to_update_service", "failed to update service")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &svc.ID,
		Metadata: map[string]any{"fields": p.Fields()},
	})

	return svc, nil
}

// check validates the fields that were sent. Only description may be
// cleared with null.
func check(p domain.Patch) error {
	if p.Name.IsNull() || (p.Name.Value != nil && strings.TrimSpace(*p.Name.Value) == "") {
		return httperr.ErrValidation("invalid_name", "name cannot be empty")
	}

	if p.DurationMinutes.Set {
		if p.DurationMinutes.Value == nil || !domain.ValidDuration(*p.DurationMinutes.Value) {
			return httperr.ErrValidation(
				"invalid_duration_minutes",
				"duration_minutes must be between 1 and 480",
			)
		}
	}

	if p.Price.Set {
		if p.Price.Value == nil || *p.Price.Value < 0 {
			return httperr.ErrValidation("invalid_price", "price cannot be negative")
		}
	}

	if p.IsActive.IsNull() {
		return httperr.ErrValidation("invalid_is_active", "is_active must be true or false")
	}

	return nil
}
