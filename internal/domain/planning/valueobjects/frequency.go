package valueobjects

import (
	"fmt"
	"time"

	"github.com/mif-gmao/gmao/internal/domain/shared"
)

type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"

	// FallbackFrequency is used when a stored or updated value cannot be recognized.
	FallbackFrequency = FrequencyMonthly
)

var frequencyAliases = map[string]Frequency{
	"weekly":        FrequencyWeekly,
	"hebdomadaire":  FrequencyWeekly,
	"hebdo":         FrequencyWeekly,
	"monthly":       FrequencyMonthly,
	"mensuel":       FrequencyMonthly,
	"mensuelle":     FrequencyMonthly,
	"quarterly":     FrequencyQuarterly,
	"trimestriel":   FrequencyQuarterly,
	"trimestrielle": FrequencyQuarterly,
}

// ParseFrequency recognizes English and French frequency words.
func ParseFrequency(s string) (Frequency, error) {
	if f, ok := frequencyAliases[shared.NormalizeLiteral(s)]; ok {
		return f, nil
	}
	return "", fmt.Errorf("invalid planning frequency: %q", s)
}

// NormalizeFrequency is ParseFrequency with FallbackFrequency for unknown input.
func NormalizeFrequency(s string) Frequency {
	if f, err := ParseFrequency(s); err == nil {
		return f
	}
	return FallbackFrequency
}

func (f Frequency) String() string {
	return string(f)
}

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly:
		return true
	}
	return false
}

// Next returns t advanced by one period. Months are calendar months, so
// Jan 31 + 1 month normalizes the way time.AddDate does (Mar 2 or 3).
func (f Frequency) Next(t time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyQuarterly:
		return t.AddDate(0, 3, 0)
	default:
		return t.AddDate(0, 1, 0)
	}
}
