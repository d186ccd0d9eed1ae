package client

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/client"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type DeleteClient struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
}

func NewDeleteClient(repo domain.Repository, audit *audit.Dispatcher) *DeleteClient {
	return &DeleteClient{repo: repo, audit: audit}
}

// Execute refuses to delete a client that still has appointments. The count
// and the delete are separate statements; a booking created in between is an
// accepted race.
func (uc *DeleteClient) Execute(ctx context.Context, id uint) (*models.Client, error) {
	count, err := uc.repo.CountAppointments(ctx, id)
	if err != nil {
		return nil, storeError("failed_to_delete_client", "failed to delete client", err)
	}

	if count > 0 {
		return nil, httperr.ErrConflict(
			"client_has_appointments",
			fmt.Sprintf("cannot delete: the client has %d appointment(s)", count),
			map[string]any{"appointmentCount": count},
		)
	}

	client, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, id, "failed_to_delete_client", "failed to delete client")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return client, nil
}
