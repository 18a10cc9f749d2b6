package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequired(t *testing.T) {
	v := NewValidator()

	type req struct {
		Name string `json:"name" validate:"required"`
	}

	assert.Error(t, v.Validate(req{}))
	assert.NoError(t, v.Validate(req{Name: "x"}))
	assert.NoError(t, v.Validate(&req{Name: "x"}))
}

func TestValidateEmail(t *testing.T) {
	v := NewValidator()

	type req struct {
		Email string `json:"email" validate:"required,email"`
	}

	assert.NoError(t, v.Validate(req{Email: "a@b.com"}))
	assert.Error(t, v.Validate(req{Email: "invalid"}))
	assert.Error(t, v.Validate(req{Email: "@b.com"}))
	assert.Error(t, v.Validate(req{Email: "a@"}))
}

func TestValidateMinMaxString(t *testing.T) {
	v := NewValidator()

	type req struct {
		Name string `json:"name" validate:"min=2,max=5"`
	}

	assert.Error(t, v.Validate(req{Name: "a"}))
	assert.NoError(t, v.Validate(req{Name: "ab"}))
	assert.Error(t, v.Validate(req{Name: "toolong"}))

	// Empty optional strings pass min
	assert.NoError(t, v.Validate(req{}))
}

func TestValidateMinMaxNumber(t *testing.T) {
	v := NewValidator()

	type req struct {
		Percent float64 `json:"percent" validate:"min=0,max=100"`
	}

	assert.NoError(t, v.Validate(req{Percent: 50}))
	assert.Error(t, v.Validate(req{Percent: -1}))
	assert.Error(t, v.Validate(req{Percent: 101}))
}

func TestValidateMinSlice(t *testing.T) {
	v := NewValidator()

	type req struct {
		Items []string `json:"items" validate:"required,min=1"`
	}

	assert.Error(t, v.Validate(req{}))
	assert.NoError(t, v.Validate(req{Items: []string{"a"}}))
}

func TestValidateOneOf(t *testing.T) {
	v := NewValidator()

	type req struct {
		Method string `json:"method" validate:"oneof=cash card upi credit"`
	}

	assert.NoError(t, v.Validate(req{Method: "cash"}))
	assert.NoError(t, v.Validate(req{Method: ""}))
	assert.Error(t, v.Validate(req{Method: "barter"}))
}

func TestValidateNonStruct(t *testing.T) {
	v := NewValidator()
	assert.Error(t, v.Validate("not a struct"))
}
