package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/BruksfildServices01/salon-api/internal/domain/patch"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 480

	DefaultPopularLimit = 5
	MaxPopularLimit     = 100
)

var ErrNotFound = errors.New("service not found")

type CreateInput struct {
	Name            string   `json:"name" validate:"required,notblank"`
	Description     *string  `json:"description"`
	DurationMinutes *int     `json:"duration_minutes" validate:"required,min=1,max=480"`
	Price           *float64 `json:"price" validate:"required,min=0"`
}

func (in *CreateInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		in.Description = nil
	}
}

func (in CreateInput) Model() *models.Service {
	return &models.Service{
		Name:            in.Name,
		Description:     in.Description,
		DurationMinutes: *in.DurationMinutes,
		Price:           *in.Price,
		IsActive:        true,
	}
}

// Patch is a partial service update. IsActive may be set directly.
type Patch struct {
	Name            patch.Field[string]  `json:"name"`
	Description     patch.Field[string]  `json:"description"`
	DurationMinutes patch.Field[int]     `json:"duration_minutes"`
	Price           patch.Field[float64] `json:"price"`
	IsActive        patch.Field[bool]    `json:"is_active"`
}

func (p Patch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name.Set {
		cols["name"] = p.Name.Column()
	}
	if p.Description.Set {
		cols["description"] = p.Description.Column()
	}
	if p.DurationMinutes.Set {
		cols["duration_minutes"] = p.DurationMinutes.Column()
	}
	if p.Price.Set {
		cols["price"] = p.Price.Column()
	}
	if p.IsActive.Set {
		cols["is_active"] = p.IsActive.Column()
	}
	return cols
}

// Fields lists the column names the patch touches, sorted.
func (p Patch) Fields() []string {
	cols := p.Columns()
	names := make([]string, 0, len(cols))
	for k := range cols {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ValidDuration reports whether minutes is inside [1, 480].
func ValidDuration(minutes int) bool {
	return minutes >= MinDurationMinutes && minutes <= MaxDurationMinutes
}

// ParseActiveFilter maps the ?active= query: "true"/"false" filter, anything
// else lists every service.
func ParseActiveFilter(raw string) *bool {
	switch strings.TrimSpace(raw) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// NormalizeLimit clamps the popular-services limit.
func NormalizeLimit(n int) int {
	if n < 1 {
		return DefaultPopularLimit
	}
	if n > MaxPopularLimit {
		return MaxPopularLimit
	}
	return n
}

type DeleteResult struct {
	Service   *models.Service
	Permanent bool
}
