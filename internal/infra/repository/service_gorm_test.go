package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/service"
	"github.com/BruksfildServices01/salon-api/internal/models"
	"github.com/BruksfildServices01/salon-api/internal/testutil"
)

func TestServiceRepository_ListFilter(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewServiceGormRepository(gdb)
	ctx := context.Background()

	testutil.SeedService(t, gdb, "Manicure", 45, 20)
	color := testutil.SeedService(t, gdb, "Color", 90, 60)
	testutil.SeedService(t, gdb, "Beard", 20, 10)
	_, err := repo.SetActive(ctx, color.ID, false)
	require.NoError(t, err)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Beard", "Color", "Manicure"}, names(all))

	active, err := repo.List(ctx, testutil.Ptr(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"Beard", "Manicure"}, names(active))

	inactive, err := repo.List(ctx, testutil.Ptr(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"Color"}, names(inactive))
}

func TestServiceRepository_CreateDefaultsActive(t *testing.T) {
	repo := NewServiceGormRepository(testutil.NewDB(t))
	svc := &models.Service{Name: "Haircut", DurationMinutes: 30, Price: 0, IsActive: true}

	require.NoError(t, repo.Create(context.Background(), svc))

	got, err := repo.GetByID(context.Background(), svc.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, 0.0, got.Price)
}

func TestServiceRepository_UpdateAndSetActive(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewServiceGormRepository(gdb)
	ctx := context.Background()
	svc := testutil.SeedService(t, gdb, "Haircut", 30, 25)

	updated, err := repo.Update(ctx, svc.ID, map[string]any{"price": 27.5, "is_active": false})
	require.NoError(t, err)
	assert.Equal(t, 27.5, updated.Price)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Haircut", updated.Name)
	assert.Equal(t, 30, updated.DurationMinutes)

	same, err := repo.Update(ctx, svc.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, 27.5, same.Price)

	activated, err := repo.SetActive(ctx, svc.ID, true)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	_, err = repo.SetActive(ctx, 999, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Update(ctx, 999, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServiceRepository_Delete(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewServiceGormRepository(gdb)
	ctx := context.Background()
	svc := testutil.SeedService(t, gdb, "Haircut", 30, 25)

	deleted, err := repo.Delete(ctx, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Haircut", deleted.Name)

	_, err = repo.GetByID(ctx, svc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Delete(ctx, svc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServiceRepository_CountActiveAppointments(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewServiceGormRepository(gdb)
	svc := testutil.SeedService(t, gdb, "Haircut", 30, 25)
	c := testutil.SeedClient(t, gdb, "Ana", "1", nil)
	at := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	for _, status := range []string{"completed", "scheduled", "cancelled", "no_show", "confirmed"} {
		testutil.SeedAppointment(t, gdb, c.ID, &svc.ID, nil, status, at)
	}

	count, err := repo.CountActiveAppointments(context.Background(), svc.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestServiceRepository_Popular(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := NewServiceGormRepository(gdb)
	ctx := context.Background()
	c := testutil.SeedClient(t, gdb, "Ana", "1", nil)
	at := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	a := testutil.SeedService(t, gdb, "A Haircut", 30, 20)
	b := testutil.SeedService(t, gdb, "B Color", 90, 50)
	cSvc := testutil.SeedService(t, gdb, "C Beard", 15, 10)
	off := testutil.SeedService(t, gdb, "D Retired", 15, 10)
	_, err := repo.SetActive(ctx, off.ID, false)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		testutil.SeedAppointment(t, gdb, c.ID, &a.ID, nil, "completed", at)
	}
	testutil.SeedAppointment(t, gdb, c.ID, &b.ID, nil, "completed", at)
	testutil.SeedAppointment(t, gdb, c.ID, &b.ID, nil, "cancelled", at)
	testutil.SeedAppointment(t, gdb, c.ID, &cSvc.ID, nil, "cancelled", at)
	testutil.SeedAppointment(t, gdb, c.ID, &off.ID, nil, "completed", at)

	top, err := repo.Popular(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, a.ID, top[0].ID)
	assert.EqualValues(t, 3, top[0].BookingCount)
	assert.Equal(t, 60.0, top[0].TotalRevenue)
	assert.Equal(t, b.ID, top[1].ID)
	assert.EqualValues(t, 1, top[1].BookingCount)
	assert.Equal(t, 50.0, top[1].TotalRevenue)

	all, err := repo.Popular(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, cSvc.ID, all[2].ID)
	assert.EqualValues(t, 0, all[2].BookingCount)
	assert.Equal(t, 0.0, all[2].TotalRevenue)
}

func names(services []models.Service) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		out = append(out, s.Name)
	}
	return out
}
