package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mif-gmao/gmao/internal/shared/constants"
	"github.com/mif-gmao/gmao/internal/shared/errors"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"valid values", 2, 20, 2, 20},
		{"page below 1", 0, 20, constants.DefaultPage, 20},
		{"negative page size", 1, -1, 1, constants.DefaultPageSize},
		{"page size capped", 1, constants.MaxPageSize + 1, 1, constants.MaxPageSize},
		{"page size at max", 1, constants.MaxPageSize, 1, constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func newContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestParsePagination(t *testing.T) {
	c, _ := newContext("/?page=3&page_size=500")
	p := ParsePagination(c)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, constants.MaxPageSize, p.PageSize)

	c, _ = newContext("/?page=abc")
	p = ParsePagination(c)
	assert.Equal(t, constants.DefaultPage, p.Page)
	assert.Equal(t, constants.DefaultPageSize, p.PageSize)
}

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"12", 12, false},
		{"0", 0, true},
		{"-4", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, _ := newContext("/")
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}
			got, err := ParseIDParam(c, "id", "intervention")
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrorResponseWithError_StatusCodes(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantType string
	}{
		{errors.NewValidationError("bad"), http.StatusBadRequest, "validation_error"},
		{errors.NewNotFoundError("missing"), http.StatusNotFound, "not_found"},
		{errors.NewConflictError("in use"), http.StatusConflict, "conflict"},
		{errors.NewInvalidTransitionError("skip"), http.StatusConflict, "invalid_transition"},
		{errors.NewStateLockedError("closed"), http.StatusBadRequest, "state_locked"},
		{errors.NewForbiddenError("no"), http.StatusForbidden, "forbidden"},
		{assert.AnError, http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.wantType, func(t *testing.T) {
			c, w := newContext("/")
			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var body APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantType, body.Error.Type)
		})
	}
}
