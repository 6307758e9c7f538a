package jsonld

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(pinnedBuilder()).RegisterRoutes(router.Group("/schema"))
	return router
}

func TestGenerateEndpoint(t *testing.T) {
	router := newTestRouter()

	body := `{"selectedSchemas":{"article":true},"data":{"article":{"headline":"Hello"}}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/schema/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Output string `json:"output"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Output, `"@type": "BlogPosting"`)
	assert.Contains(t, resp.Output, `"headline": "Hello"`)
	assert.NotContains(t, resp.Output, "<script")
}

func TestGenerateEndpointScriptWrap(t *testing.T) {
	router := newTestRouter()

	body := `{"selectedSchemas":{"person":true},"data":{}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/schema/generate?wrap=script", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Output string `json:"output"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Output, `<script type="application/ld+json">`))
	assert.True(t, strings.HasSuffix(resp.Output, "</script>"))
}

func TestGenerateEndpointNoSelection(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/schema/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "select schema types")
}
