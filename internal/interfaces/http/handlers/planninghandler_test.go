package handlers

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	planningDto "github.com/mif-gmao/gmao/internal/application/planning/dto"
	"github.com/mif-gmao/gmao/internal/interfaces/http/handlers/testutil"
	"github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

type mockGenerationRunner struct {
	result *planningDto.GenerationResultDTO
	err    error
}

func (m *mockGenerationRunner) Run(context.Context) (*planningDto.GenerationResultDTO, error) {
	return m.result, m.err
}

type mockCanDelete struct {
	deletable bool
	err       error
}

func (m *mockCanDelete) Execute(context.Context, uint) (bool, error) {
	return m.deletable, m.err
}

func TestPlanningHandler_Generate(t *testing.T) {
	tests := []struct {
		name     string
		runner   *mockGenerationRunner
		wantCode int
	}{
		{
			name:     "all created",
			runner:   &mockGenerationRunner{result: &planningDto.GenerationResultDTO{RunID: "r1", Created: 2}},
			wantCode: http.StatusOK,
		},
		{
			name: "partial failure still reports the summary",
			runner: &mockGenerationRunner{
				result: &planningDto.GenerationResultDTO{RunID: "r2", Created: 1, Failed: 1, Errors: []string{"planning 4: not found"}},
				err:    stderrors.New("planning 4: not found"),
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "listing failed",
			runner:   &mockGenerationRunner{err: errors.NewInternalError("failed to list due plannings")},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPlanningHandler(nil, nil, nil, nil, nil, tt.runner, logger.NewNopLogger())
			c, w := testutil.NewTestContext(http.MethodPost, "/plannings/generate", nil)

			h.Generate(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestPlanningHandler_Create_BadDate(t *testing.T) {
	h := NewPlanningHandler(nil, nil, nil, nil, nil, nil, logger.NewNopLogger())
	c, w := testutil.NewTestContext(http.MethodPost, "/plannings", map[string]any{
		"equipment_id":  1,
		"frequency":     "mensuel",
		"next_due_date": "next week",
	})

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEquipmentHandler_CanDelete(t *testing.T) {
	tests := []struct {
		name          string
		uc            *mockCanDelete
		wantCode      int
		wantDeletable bool
	}{
		{"free", &mockCanDelete{deletable: true}, http.StatusOK, true},
		{"referenced", &mockCanDelete{err: errors.NewConflictError("equipment has interventions that are not archived")}, http.StatusOK, false},
		{"missing", &mockCanDelete{err: errors.NewNotFoundError("equipment not found")}, http.StatusNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewEquipmentHandler(nil, nil, nil, tt.uc, nil, logger.NewNopLogger())
			c, w := testutil.NewTestContext(http.MethodGet, "/equipments/5/deletable", nil)
			testutil.SetURLParam(c, "id", "5")

			h.CanDelete(c)

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Contains(t, string(resp.Data), map[bool]string{true: `"deletable":true`, false: `"deletable":false`}[tt.wantDeletable])
		})
	}
}
