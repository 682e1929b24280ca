package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"open", StatusOpen},
		{"ouverte", StatusOpen},
		{"in_progress", StatusInProgress},
		{"en_cours", StatusInProgress},
		{"En Cours", StatusInProgress},
		{"closed", StatusClosed},
		{"cloturee", StatusClosed},
		{"Clôturée", StatusClosed},
		{"archived", StatusArchived},
		{"archivée", StatusArchived},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	for _, in := range []string{"", "done", "supprimee"} {
		_, err := ParseStatus(in)
		assert.Error(t, err, in)
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	legal := map[[2]Status]bool{
		{StatusOpen, StatusInProgress}:   true,
		{StatusOpen, StatusClosed}:       true,
		{StatusInProgress, StatusOpen}:   true,
		{StatusInProgress, StatusClosed}: true,
		{StatusClosed, StatusArchived}:   true,
	}

	for _, from := range AllStatuses() {
		for _, to := range AllStatuses() {
			assert.Equal(t, legal[[2]Status{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_ArchivedIsTerminal(t *testing.T) {
	assert.Empty(t, StatusArchived.AllowedTransitions())
	assert.True(t, StatusArchived.IsFinished())
	assert.True(t, StatusClosed.IsFinished())
	assert.False(t, StatusInProgress.IsFinished())
}

func TestParseTypeAndPriority(t *testing.T) {
	ty, err := ParseType("Préventive")
	require.NoError(t, err)
	assert.Equal(t, TypePreventive, ty)

	_, err = ParseType("urgent")
	assert.Error(t, err)

	p, err := ParsePriority("haute")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	p, err = ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, PriorityNormal, p)

	_, err = ParsePriority("critical")
	assert.Error(t, err)
}
