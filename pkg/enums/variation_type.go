package enums

import "fmt"

// VariationType classifies a priced product option group.
type VariationType string

const (
	VariationTypeSize        VariationType = "SIZE"
	VariationTypeTemperature VariationType = "TEMPERATURE"
	VariationTypeExtras      VariationType = "EXTRAS"
	VariationTypeSweetness   VariationType = "SWEETNESS"
	VariationTypeIceLevel    VariationType = "ICE_LEVEL"
	VariationTypeMilkType    VariationType = "MILK_TYPE"
)

var validVariationTypes = []VariationType{
	VariationTypeSize,
	VariationTypeTemperature,
	VariationTypeExtras,
	VariationTypeSweetness,
	VariationTypeIceLevel,
	VariationTypeMilkType,
}

// String implements fmt.Stringer.
func (v VariationType) String() string {
	return string(v)
}

// IsValid reports whether the value is a known VariationType.
func (v VariationType) IsValid() bool {
	for _, candidate := range validVariationTypes {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVariationType converts raw input into a VariationType.
func ParseVariationType(value string) (VariationType, error) {
	for _, candidate := range validVariationTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid variation type %q", value)
}
