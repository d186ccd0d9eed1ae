package service

import (
	"context"
	"errors"
	"sort"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/service"
	"github.com/BruksfildServices01/salon-api/internal/dto"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type fakeRepo struct {
	services    map[uint]*models.Service
	activeAppts map[uint]int64
	nextID      uint
	lastLimit   int
	err         error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:    map[uint]*models.Service{},
		activeAppts: map[uint]int64{},
		nextID:      1,
	}
}

func (f *fakeRepo) add(s models.Service) *models.Service {
	s.ID = f.nextID
	f.nextID++
	f.services[s.ID] = &s
	return &s
}

func (f *fakeRepo) List(ctx context.Context, active *bool) ([]models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Service
	for _, s := range f.services {
		if active == nil || s.IsActive == *active {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) Create(ctx context.Context, s *models.Service) error {
	if f.err != nil {
		return f.err
	}
	s.ID = f.nextID
	f.nextID++
	cp := *s
	f.services[s.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id uint, columns map[string]any) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for k, v := range columns {
		switch k {
		case "name":
			s.Name = v.(string)
		case "description":
			if v == nil {
				s.Description = nil
			} else {
				d := v.(string)
				s.Description = &d
			}
		case "duration_minutes":
			s.DurationMinutes = v.(int)
		case "price":
			s.Price = v.(float64)
		case "is_active":
			s.IsActive = v.(bool)
		}
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) SetActive(ctx context.Context, id uint, active bool) (*models.Service, error) {
	return f.Update(ctx, id, map[string]any{"is_active": active})
}

func (f *fakeRepo) Delete(ctx context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.services, id)
	return s, nil
}

func (f *fakeRepo) CountActiveAppointments(ctx context.Context, serviceID uint) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.activeAppts[serviceID], nil
}

func (f *fakeRepo) Popular(ctx context.Context, limit int) ([]dto.PopularServiceDTO, error) {
	f.lastLimit = limit
	return []dto.PopularServiceDTO{}, nil
}

var errBoom = errors.New("boom")
