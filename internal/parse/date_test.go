package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  string
		expectErr bool
	}{
		{name: "Calendar day", raw: "2024-01-01", expected: "2024-01-01"},
		{name: "Padded", raw: " 2024-02-29 ", expected: "2024-02-29"},
		{name: "RFC3339 uses UTC day", raw: "2024-01-01T23:30:00-02:00", expected: "2024-01-02"},
		{name: "Garbage", raw: "yesterday", expectErr: true},
		{name: "Impossible day", raw: "2023-02-30", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Date(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d.String())
		})
	}
}

func TestOptionalDate(t *testing.T) {
	d, err := OptionalDate(nil)
	assert.NoError(t, err)
	assert.Nil(t, d)

	blank := "  "
	d, err = OptionalDate(&blank)
	assert.NoError(t, err)
	assert.Nil(t, d)

	raw := "2024-03-15"
	d, err = OptionalDate(&raw)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", d.String())

	bad := "15/03/2024"
	_, err = OptionalDate(&bad)
	assert.Error(t, err)
}
