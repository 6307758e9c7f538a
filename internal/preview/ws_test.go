package preview

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaforge/internal/jsonld"
	"schemaforge/pkg/models"
)

func dialPreview(t *testing.T) *websocket.Conn {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws", WSHandler(jsonld.NewBuilder()))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = ws.Close() })

	// the handler greets every new client
	var welcome message
	require.NoError(t, ws.ReadJSON(&welcome))
	require.Equal(t, "welcome", welcome.Type)

	return ws
}

func TestWSHandlerEmptySelectionPlaceholder(t *testing.T) {
	ws := dialPreview(t)

	require.NoError(t, ws.WriteJSON(models.FormState{}))

	var msg message
	require.NoError(t, ws.ReadJSON(&msg))
	assert.Equal(t, "placeholder", msg.Type)
	assert.Contains(t, msg.Error, "select schema types")
	assert.Empty(t, msg.Output)
}

func TestWSHandlerComposesSelection(t *testing.T) {
	ws := dialPreview(t)

	state := models.FormState{
		Selected: models.Selection{Person: true},
		Data: models.FormData{
			Person: models.PersonFields{Name: "Jo"},
		},
	}
	require.NoError(t, ws.WriteJSON(state))

	var msg message
	require.NoError(t, ws.ReadJSON(&msg))
	assert.Equal(t, "schema", msg.Type)
	assert.Contains(t, msg.Output, `"@type": "Person"`)
	assert.Contains(t, msg.Output, `"name": "Jo"`)

	// messages are independent: an empty state after a valid one
	// still answers with the placeholder
	require.NoError(t, ws.WriteJSON(models.FormState{}))
	require.NoError(t, ws.ReadJSON(&msg))
	assert.Equal(t, "placeholder", msg.Type)
}
