package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "запись не найдена")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"message":"запись не найдена"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	var ok payload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Corte"}`))
	require.NoError(t, DecodeJSON(req, &ok))
	assert.Equal(t, "Corte", ok.Name)

	tests := []string{
		`{"name":"Corte","price":1}`,
		`{"name":"Corte"} {"name":"Barba"}`,
		`{"name":`,
		``,
	}
	for _, body := range tests {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		assert.Error(t, DecodeJSON(req, &p), body)
	}
}

func TestPathIDAndQueryID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/appointments/7?clientId=3&bad=x", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "7", "zero": "0"})

	id, err := PathID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = PathID(req, "zero")
	assert.Error(t, err)

	_, err = PathID(req, "missing")
	assert.Error(t, err)

	clientID, err := QueryID(req, "clientId")
	require.NoError(t, err)
	require.NotNil(t, clientID)
	assert.Equal(t, int64(3), *clientID)

	absent, err := QueryID(req, "serviceId")
	require.NoError(t, err)
	assert.Nil(t, absent)

	_, err = QueryID(req, "bad")
	assert.Error(t, err)
}
