package client

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/client"
	"github.com/BruksfildServices01/salon-api/internal/dto"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type fakeRepo struct {
	clients      map[uint]*models.Client
	appointments map[uint][]dto.ClientAppointmentDTO
	nextID       uint
	err          error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:      map[uint]*models.Client{},
		appointments: map[uint][]dto.ClientAppointmentDTO{},
		nextID:       1,
	}
}

func (f *fakeRepo) add(c models.Client) *models.Client {
	c.ID = f.nextID
	f.nextID++
	f.clients[c.ID] = &c
	return &c
}

func (f *fakeRepo) List(ctx context.Context) ([]models.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) Search(ctx context.Context, term string) ([]models.Client, error) {
	term = strings.ToLower(term)
	var out []models.Client
	for _, c := range f.clients {
		if strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) Create(ctx context.Context, c *models.Client) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.clients {
		if c.Email != nil && existing.Email != nil && *existing.Email == *c.Email {
			return domain.ErrDuplicateEmail
		}
	}
	c.ID = f.nextID
	f.nextID++
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id uint, columns map[string]any) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for k, v := range columns {
		switch k {
		case "name":
			c.Name = v.(string)
		case "phone":
			c.Phone = v.(string)
		case "email":
			c.Email = strPtr(v)
		case "notes":
			c.Notes = strPtr(v)
		}
	}
	c.UpdatedAt = time.Now()
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.clients, id)
	return c, nil
}

func (f *fakeRepo) CountAppointments(ctx context.Context, clientID uint) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.appointments[clientID])), nil
}

func (f *fakeRepo) ListAppointments(ctx context.Context, clientID uint) ([]dto.ClientAppointmentDTO, error) {
	return f.appointments[clientID], nil
}

func strPtr(v any) *string {
	if v == nil {
		return nil
	}
	s := v.(string)
	return &s
}

var errBoom = errors.New("boom")
