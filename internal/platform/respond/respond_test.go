// Copyright (c) 2026 Kiji. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiji/internal/platform/apperr"
	"github.com/taibuivan/kiji/internal/platform/respond"
)

/*
TestRespond_OK verifies the success path writes the payload verbatim with 200.
*/
func TestRespond_OK(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.OK(recorder, map[string][]string{"topics": {"cats"}})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var body map[string][]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []string{"cats"}, body["topics"])
}

/*
TestRespond_Error checks the {"msg": ...} envelope for every error kind.
*/
func TestRespond_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"bad_request", apperr.BadRequest(), http.StatusBadRequest, "Bad Request"},
		{"not_found", apperr.NotFound("Article"), http.StatusNotFound, "Not Found"},
		{"username_not_found", apperr.UsernameNotFound(), http.StatusNotFound, "Username Does Not Exist"},
		{"internal", apperr.Internal(errors.New("boom")), http.StatusInternalServerError, "Internal Server Error"},
		{"plain_error_coerced", errors.New("raw db failure"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/api/anything", nil)

			respond.Error(recorder, request, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var envelope respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantMsg, envelope.Msg)
		})
	}
}

/*
TestRespond_NoContent verifies that 204 responses carry no body.
*/
func TestRespond_NoContent(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.NoContent(recorder)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Zero(t, recorder.Body.Len())
}
