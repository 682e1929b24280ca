package valueobjects

import (
	"fmt"

	"github.com/mif-gmao/gmao/internal/domain/shared"
)

type InterventionType string

const (
	TypeCorrective InterventionType = "corrective"
	TypePreventive InterventionType = "preventive"
)

var typeAliases = map[string]InterventionType{
	"corrective": TypeCorrective,
	"correctif":  TypeCorrective,
	"preventive": TypePreventive,
	"preventif":  TypePreventive,
}

func ParseType(s string) (InterventionType, error) {
	if t, ok := typeAliases[shared.NormalizeLiteral(s)]; ok {
		return t, nil
	}
	return "", fmt.Errorf("invalid intervention type: %q", s)
}

func (t InterventionType) String() string {
	return string(t)
}

func (t InterventionType) IsValid() bool {
	return t == TypeCorrective || t == TypePreventive
}
