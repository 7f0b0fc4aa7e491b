package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindhuatluri/LOC/internal/domain/valueobject"
)

func TestProvince_FromString_AllCodes(t *testing.T) {
	codes := []string{"ON", "BC", "AB", "QC", "MB", "SK", "NS", "NB", "NL", "PE", "YT", "NT", "NU"}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			p, err := valueobject.ProvinceFromString(code)
			require.NoError(t, err)
			assert.Equal(t, code, p.String())
			assert.False(t, p.IsZero())
		})
	}
}

func TestProvince_FromString_Invalid(t *testing.T) {
	for _, code := range []string{"XX", "on", "Ontario", ""} {
		t.Run("invalid "+code, func(t *testing.T) {
			p, err := valueobject.ProvinceFromString(code)
			require.Error(t, err)
			assert.True(t, p.IsZero())
		})
	}
}

func TestProvince_Equal(t *testing.T) {
	on1, err := valueobject.ProvinceFromString("ON")
	require.NoError(t, err)
	on2, err := valueobject.ProvinceFromString("ON")
	require.NoError(t, err)
	bc, err := valueobject.ProvinceFromString("BC")
	require.NoError(t, err)

	assert.True(t, on1.Equal(on2))
	assert.False(t, on1.Equal(bc))
}
