package valueobjects

import (
	"fmt"

	"github.com/mif-gmao/gmao/internal/domain/shared"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

var priorityAliases = map[string]Priority{
	"low":     PriorityLow,
	"basse":   PriorityLow,
	"normal":  PriorityNormal,
	"normale": PriorityNormal,
	"high":    PriorityHigh,
	"haute":   PriorityHigh,
}

// ParsePriority resolves a priority literal. Empty input yields PriorityNormal.
func ParsePriority(s string) (Priority, error) {
	key := shared.NormalizeLiteral(s)
	if key == "" {
		return PriorityNormal, nil
	}
	if p, ok := priorityAliases[key]; ok {
		return p, nil
	}
	return "", fmt.Errorf("invalid priority: %q", s)
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}
