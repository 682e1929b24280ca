package valueobjects

import (
	"fmt"

	"github.com/mif-gmao/gmao/internal/domain/shared"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
	StatusArchived   Status = "archived"
)

// statusAliases maps folded input literals, including the French vocabulary
// used by operators, to canonical statuses.
var statusAliases = map[string]Status{
	"open":        StatusOpen,
	"ouverte":     StatusOpen,
	"ouvert":      StatusOpen,
	"in_progress": StatusInProgress,
	"en_cours":    StatusInProgress,
	"closed":      StatusClosed,
	"cloturee":    StatusClosed,
	"cloture":     StatusClosed,
	"archived":    StatusArchived,
	"archivee":    StatusArchived,
	"archive":     StatusArchived,
}

var statusTransitions = map[Status][]Status{
	StatusOpen:       {StatusInProgress, StatusClosed},
	StatusInProgress: {StatusOpen, StatusClosed},
	StatusClosed:     {StatusArchived},
	StatusArchived:   {},
}

// ParseStatus accepts canonical and French literals, ignoring case and accents.
func ParseStatus(s string) (Status, error) {
	if st, ok := statusAliases[shared.NormalizeLiteral(s)]; ok {
		return st, nil
	}
	return "", fmt.Errorf("invalid intervention status: %q", s)
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether next is in the legality table for s.
// Re-applying the current status is not a transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from s in one step.
func (s Status) AllowedTransitions() []Status {
	out := make([]Status, len(statusTransitions[s]))
	copy(out, statusTransitions[s])
	return out
}

// IsFinished reports closed or archived, the states that carry a closure timestamp.
func (s Status) IsFinished() bool {
	return s == StatusClosed || s == StatusArchived
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func (s Status) IsArchived() bool {
	return s == StatusArchived
}

// AllStatuses lists statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusClosed, StatusArchived}
}
