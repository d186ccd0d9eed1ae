package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Name  Field[string]  `json:"name"`
	Notes Field[string]  `json:"notes"`
	Price Field[float64] `json:"price"`
}

func TestField_DistinguishesOmittedFromNull(t *testing.T) {
	var b body
	require.NoError(t, json.Unmarshal([]byte(`{"notes": null, "price": 12.5}`), &b))

	assert.False(t, b.Name.Set)
	assert.False(t, b.Name.IsNull())

	assert.True(t, b.Notes.Set)
	assert.True(t, b.Notes.IsNull())
	assert.Nil(t, b.Notes.Column())

	assert.True(t, b.Price.Set)
	require.NotNil(t, b.Price.Value)
	assert.Equal(t, 12.5, *b.Price.Value)
	assert.Equal(t, 12.5, b.Price.Column())
}

func TestField_TypeMismatch(t *testing.T) {
	var b body
	err := json.Unmarshal([]byte(`{"price": "free"}`), &b)
	require.Error(t, err)
}

func TestOfAndNull(t *testing.T) {
	f := Of("Ana")
	assert.True(t, f.Set)
	assert.Equal(t, "Ana", f.Column())

	n := Null[int]()
	assert.True(t, n.IsNull())
}
