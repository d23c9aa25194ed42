package validation

import (
	"errors"
	"net/http"
	"testing"

	"cats-api/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string   `json:"cat_name" validate:"required,min=2"`
	Weight    float64  `json:"weight" validate:"gt=0"`
	Birthdate string   `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Lat       *float64 `json:"lat" validate:"required,latitude"`
}

func TestStruct_OK(t *testing.T) {
	lat := 60.17
	require.NoError(t, Struct(sample{Name: "Tom", Weight: 4.2, Birthdate: "2020-01-31", Lat: &lat}))
}

func TestStruct_FieldErrorsUseJSONNames(t *testing.T) {
	err := Struct(sample{Name: "T", Birthdate: "31.01.2020"})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}
	assert.Equal(t, "must be at least 2 characters", byField["cat_name"])
	assert.Equal(t, "must be greater than 0", byField["weight"])
	assert.Equal(t, "must match the layout 2006-01-02", byField["birthdate"])
	assert.Equal(t, "is required", byField["lat"])
}
