package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoakoBallesteros/workforce-staffing/internal/handler"
)

func TestServicesListIncludesAllSevenPlusAll(t *testing.T) {
	h := handler.NewServicesHandler()

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Services []struct {
			Key   string `json:"key"`
			Label string `json:"label"`
		} `json:"services"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Len(t, body.Services, 8)
	assert.Equal(t, "all", body.Services[len(body.Services)-1].Key)
}
