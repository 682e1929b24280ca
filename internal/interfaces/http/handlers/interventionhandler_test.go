package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appDto "github.com/mif-gmao/gmao/internal/application/intervention/dto"
	"github.com/mif-gmao/gmao/internal/application/intervention/usecases"
	"github.com/mif-gmao/gmao/internal/interfaces/http/handlers/testutil"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
	"github.com/mif-gmao/gmao/internal/shared/constants"
	"github.com/mif-gmao/gmao/internal/shared/errors"
	"github.com/mif-gmao/gmao/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreate struct {
	fn func(ctx context.Context, cmd usecases.CreateInterventionCommand) (*appDto.InterventionDTO, error)
}

func (m *mockCreate) Execute(ctx context.Context, cmd usecases.CreateInterventionCommand) (*appDto.InterventionDTO, error) {
	return m.fn(ctx, cmd)
}

type mockChangeStatus struct {
	fn func(ctx context.Context, cmd usecases.ChangeStatusCommand) (*appDto.InterventionDTO, error)
}

func (m *mockChangeStatus) Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*appDto.InterventionDTO, error) {
	return m.fn(ctx, cmd)
}

type mockList struct {
	fn func(ctx context.Context, q usecases.ListInterventionsQuery) (*appDto.InterventionListDTO, error)
}

func (m *mockList) Execute(ctx context.Context, q usecases.ListInterventionsQuery) (*appDto.InterventionListDTO, error) {
	return m.fn(ctx, q)
}

func newInterventionHandler(create usecases.CreateInterventionExecutor, change usecases.ChangeStatusExecutor, list usecases.ListInterventionsExecutor) *InterventionHandler {
	return NewInterventionHandler(create, change, nil, nil, nil, list, nil, logger.NewNopLogger())
}

// =====================================================================
// Tests
// =====================================================================

func TestInterventionHandler_Create(t *testing.T) {
	var got usecases.CreateInterventionCommand
	create := &mockCreate{fn: func(_ context.Context, cmd usecases.CreateInterventionCommand) (*appDto.InterventionDTO, error) {
		got = cmd
		return &appDto.InterventionDTO{ID: 9, Title: cmd.Title, Status: "open"}, nil
	}}
	h := newInterventionHandler(create, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/interventions", map[string]any{
		"title":    "Fuite vanne",
		"type":     "curatif",
		"priority": "haute",
		"due_date": "2026-11-03",
	})
	testutil.SetAuthContext(c, 7, authorization.RoleResponsable)

	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), got.CreatorID)
	assert.Equal(t, "curatif", got.Type)
	require.NotNil(t, got.DueDate)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestInterventionHandler_Create_Validation(t *testing.T) {
	create := &mockCreate{fn: func(context.Context, usecases.CreateInterventionCommand) (*appDto.InterventionDTO, error) {
		t.Fatal("use case must not be called")
		return nil, nil
	}}
	h := newInterventionHandler(create, nil, nil)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"type": "preventif"}},
		{"bad due date", map[string]any{"title": "x", "due_date": "03/11/2026"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodPost, "/interventions", tt.body)
			testutil.SetAuthContext(c, 7, authorization.RoleResponsable)

			h.Create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestInterventionHandler_Create_Unauthenticated(t *testing.T) {
	h := newInterventionHandler(&mockCreate{}, nil, nil)
	c, w := testutil.NewTestContext(http.MethodPost, "/interventions", map[string]any{"title": "x"})

	h.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInterventionHandler_ChangeStatus_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
	}{
		{"locked", errors.NewStateLockedError("intervention is closed"), http.StatusBadRequest, "state_locked"},
		{"skip", errors.NewInvalidTransitionError("cannot archive"), http.StatusConflict, "invalid_transition"},
		{"missing", errors.NewNotFoundError("intervention not found"), http.StatusNotFound, "not_found"},
		{"bad literal", errors.NewValidationError("invalid status"), http.StatusBadRequest, "validation_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := &mockChangeStatus{fn: func(context.Context, usecases.ChangeStatusCommand) (*appDto.InterventionDTO, error) {
				return nil, tt.err
			}}
			h := newInterventionHandler(nil, change, nil)

			c, w := testutil.NewTestContext(http.MethodPatch, "/interventions/3/status", map[string]any{"status": "archivé"})
			testutil.SetURLParam(c, "id", "3")
			testutil.SetAuthContext(c, 7, authorization.RoleTechnicien)

			h.ChangeStatus(c)

			assert.Equal(t, tt.wantCode, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
		})
	}
}

func TestInterventionHandler_ChangeStatus_PassesCommand(t *testing.T) {
	var got usecases.ChangeStatusCommand
	change := &mockChangeStatus{fn: func(_ context.Context, cmd usecases.ChangeStatusCommand) (*appDto.InterventionDTO, error) {
		got = cmd
		return &appDto.InterventionDTO{ID: cmd.InterventionID, Status: "closed"}, nil
	}}
	h := newInterventionHandler(nil, change, nil)

	c, w := testutil.NewTestContext(http.MethodPatch, "/interventions/3/status", map[string]any{
		"status": "Clôturé",
		"remark": "pièce changée",
	})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 11, authorization.RoleTechnicien)

	h.ChangeStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ChangeStatusCommand{
		InterventionID: 3,
		Status:         "Clôturé",
		Remark:         "pièce changée",
		PrincipalID:    11,
	}, got)
}

func TestInterventionHandler_List(t *testing.T) {
	var got usecases.ListInterventionsQuery
	list := &mockList{fn: func(_ context.Context, q usecases.ListInterventionsQuery) (*appDto.InterventionListDTO, error) {
		got = q
		return &appDto.InterventionListDTO{
			Items:    []*appDto.InterventionDTO{{ID: 1}, {ID: 2}},
			Total:    2,
			Page:     1,
			PageSize: 20,
		}, nil
	}}
	h := newInterventionHandler(nil, nil, list)

	c, w := testutil.NewTestContext(http.MethodGet, "/interventions", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "en cours", "urgent": "true", "equipment_id": "4"})

	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "en cours", got.Status)
	require.NotNil(t, got.Urgent)
	assert.True(t, *got.Urgent)
	require.NotNil(t, got.EquipmentID)
	assert.Equal(t, uint(4), *got.EquipmentID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var page struct {
		Items []appDto.InterventionDTO `json:"items"`
		Total int64                    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Total)
}

func TestInterventionHandler_ListPagination(t *testing.T) {
	tests := []struct {
		name         string
		query        map[string]string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", map[string]string{}, constants.DefaultPage, constants.DefaultPageSize},
		{"explicit page", map[string]string{"page": "3", "page_size": "50"}, 3, 50},
		{"page size capped", map[string]string{"page_size": "5000"}, constants.DefaultPage, constants.MaxPageSize},
		{"garbage falls back", map[string]string{"page": "abc", "page_size": "-4"}, constants.DefaultPage, constants.DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got usecases.ListInterventionsQuery
			list := &mockList{fn: func(_ context.Context, q usecases.ListInterventionsQuery) (*appDto.InterventionListDTO, error) {
				got = q
				return &appDto.InterventionListDTO{Page: q.Page, PageSize: q.PageSize}, nil
			}}
			h := newInterventionHandler(nil, nil, list)

			c, w := testutil.NewTestContext(http.MethodGet, "/interventions", nil)
			testutil.SetQueryParams(c, tt.query)

			h.List(c)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}
