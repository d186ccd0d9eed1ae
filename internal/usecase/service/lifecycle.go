package service

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/service"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

// ======================================================
// DELETE
// ======================================================

type DeleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteService(repo domain.Repository, audit *audit.Dispatcher) *DeleteService {
	return &DeleteService{repo: repo, audit: audit}
}

// Execute deactivates the service, or removes it when permanent is set.
// Only the permanent path is guarded by active appointments: deactivation
// keeps the row so existing bookings stay valid.
func (uc *DeleteService) Execute(
	ctx context.Context,
	id uint,
	permanent bool,
) (*domain.DeleteResult, error) {

	if !permanent {
		svc, err := uc.repo.SetActive(ctx, id, false)
		if err != nil {
			return nil, mapRepoError(err, id, "failed_to_delete_service", "failed to delete service")
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "service_deactivated",
			Entity:   "service",
			EntityID: &svc.ID,
		})
		return &domain.DeleteResult{Service: svc}, nil
	}

	count, err := uc.repo.CountActiveAppointments(ctx, id)
	if err != nil {
		return nil, storeError("failed_to_delete_service", "failed to delete service", err)
	}

	if count > 0 {
		return nil, httperr.ErrConflict(
			"service_has_appointments",
			fmt.Sprintf("cannot delete permanently: the service has %d active appointment(s)", count),
			map[string]any{
				"appointmentCount": count,
				"suggestion":       "use soft delete (is_active = false) instead",
			},
		)
	}

	svc, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, id, "failed_to_delete_service", "failed to delete service")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return &domain.DeleteResult{Service: svc, Permanent: true}, nil
}

// ======================================================
// ACTIVATE
// ======================================================

type ActivateService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewActivateService(repo domain.Repository, audit *audit.Dispatcher) *ActivateService {
	return &ActivateService{repo: repo, audit: audit}
}

func (uc *ActivateService) Execute(ctx context.Context, id uint) (*models.Service, error) {
	svc, err := uc.repo.SetActive(ctx, id, true)
	if err != nil {
		return nil, mapRepoError(err, id, "failed_to_activate_service", "failed to activate service")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_activated",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	return svc, nil
}
