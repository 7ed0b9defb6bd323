package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondValidationError(rec, "phone", "phone is too short")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":{"kind":"validation","field":"phone","message":"phone is too short"}}`, rec.Body.String())
}

func TestRespondHelpers_Kinds(t *testing.T) {
	tests := []struct {
		name   string
		call   func(w http.ResponseWriter)
		status int
		kind   ErrorKind
	}{
		{name: "not found", call: func(w http.ResponseWriter) { RespondNotFound(w, "x") }, status: http.StatusNotFound, kind: KindNotFound},
		{name: "conflict", call: func(w http.ResponseWriter) { RespondConflict(w, "x") }, status: http.StatusConflict, kind: KindConflict},
		{name: "internal", call: RespondInternalError, status: http.StatusInternalServerError, kind: KindInternal},
		{name: "bad request", call: func(w http.ResponseWriter) { RespondBadRequest(w, "x") }, status: http.StatusBadRequest, kind: KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.call(rec)

			assert.Equal(t, tt.status, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.kind, body.Error.Kind)
			assert.Empty(t, body.Error.Field)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	var p payload
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anna"}`))
	require.NoError(t, DecodeJSON(r, &p))
	assert.Equal(t, "Anna", p.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anna","extra":1}`))
	assert.Error(t, DecodeJSON(r, &p))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anna"}{"name":"Bob"}`))
	assert.Error(t, DecodeJSON(r, &p))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(r, &p))
}
