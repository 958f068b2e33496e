package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/nijouzu/nijouzu-api/docs"
	"github.com/nijouzu/nijouzu-api/internal/config"
)

func TestSwaggerInfoMatchesService(t *testing.T) {
	info := config.DefaultServiceInfo()

	assert.Equal(t, info.Title, docs.SwaggerInfo.Title)
	assert.Equal(t, info.Description, docs.SwaggerInfo.Description)
	assert.Equal(t, info.Version, docs.SwaggerInfo.Version)
}

func TestDocumentIsRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Version     string `json:"version"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "Nijouzu API", parsed.Info.Title)
	assert.Equal(t, "Japanese Learning API", parsed.Info.Description)
	assert.Equal(t, "0.1.0", parsed.Info.Version)
	assert.Contains(t, parsed.Paths, "/")
	assert.Contains(t, parsed.Paths, "/health")
}
