package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var in struct {
		Start Date `json:"startDate"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"startDate":"2024-02-29"}`), &in))
	assert.Equal(t, "2024-02-29", in.Start.String())

	out, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"startDate":"2024-02-29"}`, string(out))
}

func TestDate_UnmarshalErrorNamesField(t *testing.T) {
	var in struct {
		Start Date `json:"startDate"`
	}
	err := json.Unmarshal([]byte(`{"startDate":"01/02/2024"}`), &in)

	var typeErr *json.UnmarshalTypeError
	require.True(t, errors.As(err, &typeErr), "got %v", err)
	assert.Equal(t, "startDate", typeErr.Field)
}
