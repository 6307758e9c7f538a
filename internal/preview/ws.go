// Package preview pushes regenerated schema output over a websocket so the
// form UI can re-render on every input event without polling.
package preview

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"schemaforge/internal/jsonld"
	"schemaforge/pkg/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // local single-user tool
	},
}

type message struct {
	Type   string `json:"type"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// WSHandler answers each received form state with the composed output.
// Messages are independent; nothing is queued or cancelled.
func WSHandler(b *jsonld.Builder) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer ws.Close()

		log.Println("[preview] client connected")
		_ = ws.WriteJSON(message{Type: "welcome"})

		for {
			var state models.FormState
			if err := ws.ReadJSON(&state); err != nil {
				break
			}

			out, err := jsonld.Compose(b.FromForm(state))
			if err != nil {
				if errors.Is(err, jsonld.ErrNoSelection) {
					_ = ws.WriteJSON(message{
						Type:  "placeholder",
						Error: "select schema types and fill in the data to generate",
					})
					continue
				}
				_ = ws.WriteJSON(message{Type: "error", Error: "generate failed"})
				continue
			}
			_ = ws.WriteJSON(message{Type: "schema", Output: out})
		}

		log.Println("[preview] client disconnected")
	}
}
