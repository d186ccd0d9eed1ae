package client

import (
	"errors"
	"sort"
	"strings"

	"github.com/BruksfildServices01/salon-api/internal/domain/patch"
	"github.com/BruksfildServices01/salon-api/internal/dto"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

var (
	ErrNotFound       = errors.New("client not found")
	ErrDuplicateEmail = errors.New("client email already exists")
)

type CreateInput struct {
	Name  string  `json:"name" validate:"required,notblank"`
	Email *string `json:"email" validate:"omitempty,email_loose"`
	Phone string  `json:"phone" validate:"required,phone"`
	Notes *string `json:"notes"`
}

// Normalize trims the input and turns an empty email or notes into NULL.
func (in *CreateInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = blankToNil(in.Email)
	in.Notes = blankToNil(in.Notes)
}

func (in CreateInput) Model() *models.Client {
	return &models.Client{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
		Notes: in.Notes,
	}
}

// Patch is a partial client update; only fields that were sent are written.
type Patch struct {
	Name  patch.Field[string] `json:"name"`
	Email patch.Field[string] `json:"email"`
	Phone patch.Field[string] `json:"phone"`
	Notes patch.Field[string] `json:"notes"`
}

// Normalize trims the sent values the same way CreateInput does. A blank
// email or notes becomes NULL.
func (p *Patch) Normalize() {
	p.Name.Value = trimmed(p.Name.Value)
	p.Phone.Value = trimmed(p.Phone.Value)
	p.Email.Value = blankToNil(p.Email.Value)
	p.Notes.Value = blankToNil(p.Notes.Value)
}

func (p Patch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name.Set {
		cols["name"] = p.Name.Column()
	}
	if p.Email.Set {
		cols["email"] = p.Email.Column()
	}
	if p.Phone.Set {
		cols["phone"] = p.Phone.Column()
	}
	if p.Notes.Set {
		cols["notes"] = p.Notes.Column()
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

type History struct {
	Client       *models.Client
	Appointments []dto.ClientAppointmentDTO
}

func (h History) Total() int {
	return len(h.Appointments)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
