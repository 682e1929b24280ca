package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mif-gmao/gmao/internal/domain/intervention"
	vo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
)

// recordingNotifier keeps every event handed to it.
type recordingNotifier struct {
	mu     sync.Mutex
	events []intervention.Event
}

func (n *recordingNotifier) Notify(_ context.Context, events []intervention.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, events...)
}

func (n *recordingNotifier) Events() []intervention.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]intervention.Event, len(n.events))
	copy(out, n.events)
	return out
}

type observation struct {
	From    vo.Status
	To      vo.Status
	Outcome string
}

type recordingObserver struct {
	mu  sync.Mutex
	obs []observation
}

func (o *recordingObserver) ObserveTransition(from, to vo.Status, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.obs = append(o.obs, observation{From: from, To: to, Outcome: outcome})
}

func (o *recordingObserver) Outcomes() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.obs))
	for _, ob := range o.obs {
		out = append(out, ob.Outcome)
	}
	return out
}

var errHistoryUnavailable = errors.New("history store unavailable")

// failingHistory delegates reads and rejects every Append.
type failingHistory struct {
	intervention.HistoryRepository
}

func (failingHistory) Append(context.Context, *intervention.HistoryEntry) error {
	return errHistoryUnavailable
}
