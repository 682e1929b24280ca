package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLiteral(t *testing.T) {
	tests := map[string]string{
		"Clôturée":    "cloturee",
		"  EN COURS ": "en_cours",
		"archivée":    "archivee",
		"Préventive":  "preventive",
		"in-progress": "in_progress",
		"":            "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeLiteral(in), in)
	}
}
