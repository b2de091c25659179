package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/rider-tracker/docs"
)

func TestSwaggerRegistrado(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info  struct{ Title string } `json:"info"`
		Paths map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "Rider Tracker API", parsed.Info.Title)
	for _, p := range []string{
		"/api/auth/signup", "/api/customer", "/api/delivery", "/api/delivery/history/summary.pdf",
		"/api/rider/map", "/api/rider/simulation", "/health",
	} {
		assert.Contains(t, parsed.Paths, p)
	}
}
