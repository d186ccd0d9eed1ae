package client

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/client"
	"github.com/BruksfildServices01/salon-api/internal/models"
	"github.com/BruksfildServices01/salon-api/internal/validators"
)

var clientMessages = validators.Messages{
	"name":              "name and phone are required",
	"phone.required":    "name and phone are required",
	"phone.phone":       "invalid phone format",
	"email.email_loose": "invalid email",
}

type CreateClient struct {
	repo     domain.Repository
	validate *validator.Validate
	audit    *audit.Dispatcher
}

func NewCreateClient(
	repo domain.Repository,
	validate *validator.Validate,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:     repo,
		validate: validate,
		audit:    audit,
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Client, error) {

	in.Normalize()
	if err := uc.validate.Struct(in); err != nil {
		return nil, validators.Translate(err, clientMessages)
	}

	client := in.Model()
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, mapRepoError(err, 0, "failed_to_create_client", "failed to create client")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return client, nil
}
