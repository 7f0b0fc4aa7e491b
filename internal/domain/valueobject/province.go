package valueobject

import "fmt"

// Province is an immutable value object for a Canadian province or
// territory code.
type Province struct {
	value string
}

// provinceCodes is the whitelist of recognized codes.
var provinceCodes = map[string]struct{}{
	"ON": {}, "BC": {}, "AB": {}, "QC": {}, "MB": {}, "SK": {},
	"NS": {}, "NB": {}, "NL": {}, "PE": {}, "YT": {}, "NT": {}, "NU": {},
}

// ProvinceFromString reconstructs a Province from its two-letter code.
func ProvinceFromString(s string) (Province, error) {
	if _, ok := provinceCodes[s]; !ok {
		return Province{}, fmt.Errorf("invalid province code: %q", s)
	}
	return Province{value: s}, nil
}

// String returns the two-letter code.
func (p Province) String() string {
	return p.value
}

// IsZero returns true if the Province has not been set.
func (p Province) IsZero() bool {
	return p.value == ""
}

// Equal checks equality with another Province.
func (p Province) Equal(other Province) bool {
	return p.value == other.value
}
