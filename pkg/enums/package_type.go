package enums

import "fmt"

// PackageType is the standard/premium tier offered on the packages catalog.
type PackageType string

const (
	PackageTypeStandard PackageType = "standard"
	PackageTypePremium  PackageType = "premium"
)

var validPackageTypes = []PackageType{
	PackageTypeStandard,
	PackageTypePremium,
}

func (p PackageType) IsValid() bool {
	for _, candidate := range validPackageTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePackageType converts the raw string to PackageType.
func ParsePackageType(value string) (PackageType, error) {
	for _, candidate := range validPackageTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid package type %q", value)
}
