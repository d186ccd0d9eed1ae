package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-api/internal/httperr"
)

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("+1 (555) 123-4567"))
	assert.True(t, IsPhone("600123123"))
	assert.False(t, IsPhone("abc"))
	assert.False(t, IsPhone(""))
	assert.False(t, IsPhone("555-CALL"))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@b.co"))
	assert.True(t, IsEmail("maria.lopez@salon.example.com"))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail("a@b"))
	assert.False(t, IsEmail("a b@c.de"))
	assert.False(t, IsEmail(""))
}

type sample struct {
	Name  string `json:"name" validate:"required,notblank"`
	Phone string `json:"phone" validate:"required,phone"`
	Email string `json:"email" validate:"omitempty,email_loose"`
	Age   *int   `json:"age" validate:"omitempty,min=1,max=480"`
}

func TestNew_RegisteredRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(sample{Name: "Ana", Phone: "+34 600 000 000"}))
	assert.NoError(t, v.Var("a@b.co", "email_loose"))
	assert.Error(t, v.Var("not-an-email", "email_loose"))
	assert.Error(t, v.Var("abc", "phone"))
	assert.Error(t, v.Var("   ", "notblank"))
}

func TestTranslate(t *testing.T) {
	v := New()
	msgs := Messages{
		"name":          "name and phone are required",
		"phone.phone":   "invalid phone format",
		"*.email_loose": "invalid email",
	}

	err := Translate(v.Struct(sample{Phone: "1"}), msgs)
	require.Error(t, err)
	assert.Equal(t, "name and phone are required", err.Error())
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
	assert.Equal(t, "invalid_name", httperr.CodeOf(err))

	err = Translate(v.Struct(sample{Name: "Ana", Phone: "abc"}), msgs)
	assert.Equal(t, "invalid phone format", err.Error())

	err = Translate(v.Struct(sample{Name: "Ana", Phone: "1", Email: "nope"}), msgs)
	assert.Equal(t, "invalid email", err.Error())

	age := 900
	err = Translate(v.Struct(sample{Name: "Ana", Phone: "1", Age: &age}), msgs)
	assert.Equal(t, "field age failed on the 'max' rule", err.Error())

	assert.NoError(t, Translate(nil, msgs))
}
