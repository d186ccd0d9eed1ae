package client

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/client"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type UpdateClient struct {
	repo     domain.Repository
	validate *validator.Validate
	audit    *audit.Dispatcher
}

func NewUpdateClient(
	repo domain.Repository,
	validate *validator.Validate,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:     repo,
		validate: validate,
		audit:    audit,
	}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	id uint,
	p domain.Patch,
) (*models.Client, error) {

	p.Normalize()
	if err := uc.check(p); err != nil {
		return nil, err
	}

	client, err := uc.repo.Update(ctx, id, p.Columns())
	if err != nil {
		return nil, mapRepoError(err, id, "failed_to_update_client", "failed to update client")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
		Metadata: map[string]any{"fields": p.Fields()},
	})

	return client, nil
}

// check validates only the fields that were sent. Name and phone are
// required columns, so they may change but never be cleared.
func (uc *UpdateClient) check(p domain.Patch) error {
	if p.Name.Set && (p.Name.Value == nil || strings.TrimSpace(*p.Name.Value) == "") {
		return httperr.ErrValidation("invalid_name", "name cannot be empty")
	}

	if p.Email.Value != nil {
		if err := uc.validate.Var(*p.Email.Value, "email_loose"); err != nil {
			return httperr.ErrValidation("invalid_email", "invalid email")
		}
	}

	if p.Phone.Set {
		if p.Phone.Value == nil || strings.TrimSpace(*p.Phone.Value) == "" {
			return httperr.ErrValidation("invalid_phone", "phone cannot be empty")
		}
		if err := uc.validate.Var(*p.Phone.Value, "phone"); err != nil {
			return httperr.ErrValidation("invalid_phone", "invalid phone format")
		}
	}

	return nil
}
