package client

import (
	"context"
	"errors"
	"strings"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/client"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(ctx context.Context) ([]models.Client, error) {
	clients, err := uc.repo.List(ctx)
	if err != nil {
		return nil, storeError("failed_to_list_clients", "failed to list clients", err)
	}
	return clients, nil
}

// ======================================================
// GET
// ======================================================

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(ctx context.Context, id uint) (*models.Client, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, id, "failed_to_get_client", "failed to get client")
	}
	return client, nil
}

// ======================================================
// SEARCH
// ======================================================

type SearchClients struct {
	repo domain.Repository
}

func NewSearchClients(repo domain.Repository) *SearchClients {
	return &SearchClients{repo: repo}
}

type SearchResult struct {
	Term    string
	Clients []models.Client
}

func (uc *SearchClients) Execute(ctx context.Context, q string) (*SearchResult, error) {
	term := strings.TrimSpace(q)
	if term == "" {
		return nil, httperr.ErrValidation("missing_query", `search parameter "q" is required`)
	}

	clients, err := uc.repo.Search(ctx, term)
	if err != nil {
		return nil, storeError("failed_to_search_clients", "failed to search clients", err)
	}

	return &SearchResult{Term: term, Clients: clients}, nil
}

// ======================================================
// HISTORY
// ======================================================

type GetClientHistory struct {
	repo domain.Repository
}

func NewGetClientHistory(repo domain.Repository) *GetClientHistory {
	return &GetClientHistory{repo: repo}
}

func (uc *GetClientHistory) Execute(ctx context.Context, id uint) (*domain.History, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, id, "failed_to_get_history", "failed to get client history")
	}

	appointments, err := uc.repo.ListAppointments(ctx, id)
	if err != nil {
		return nil, storeError("failed_to_get_history", "failed to get client history", err)
	}

	return &domain.History{Client: client, Appointments: appointments}, nil
}

// mapRepoError turns repository sentinels into API errors.
func mapRepoError(err error, id uint, code, message string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return httperr.NotFoundID("Client", id)
	case errors.Is(err, domain.ErrDuplicateEmail):
		return httperr.ErrConflict("duplicate_email", "a client with that email already exists", nil)
	default:
		return storeError(code, message, err)
	}
}
