package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseError(t *testing.T) {
	rec := httptest.NewRecorder()

	ResponseError(rec, http.StatusConflict, CodeVenueUnavailable, "Venue is not available", map[string]any{
		"conflicting_bookings": []string{"b-1"},
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "venue_unavailable", body["code"])
	assert.NotContains(t, body, "data")
}

func TestResponseSuccess_OmitsCode(t *testing.T) {
	rec := httptest.NewRecorder()

	ResponseSuccess(rec, "success", map[string]int{"total": 1})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"code"`)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Amount float64 `json:"amount"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"single document", `{"amount": 250}`, false},
		{"trailing whitespace", "{\"amount\": 250}\n", false},
		{"malformed", `{"amount":`, true},
		{"two documents", `{"amount": 1}{"amount": 2}`, true},
		{"too large", `{"amount": 1, "pad": "` + strings.Repeat("x", maxBodyBytes) + `"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var got payload
			err := DecodeJSON(rec, req, &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 250.0, got.Amount)
		})
	}
}
