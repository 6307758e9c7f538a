package jsonld

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schemaforge/pkg/models"
)

type Handler struct {
	Builder *Builder
}

func NewHandler(b *Builder) *Handler {
	return &Handler{Builder: b}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate) // POST /schema/generate
}

func (h *Handler) generate(c *gin.Context) {
	var state models.FormState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form state: " + err.Error()})
		return
	}

	out, err := Compose(h.Builder.FromForm(state))
	if err != nil {
		if errors.Is(err, ErrNoSelection) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "select schema types and fill in the data to generate",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generate failed"})
		return
	}

	if c.Query("wrap") == "script" {
		out = WrapScript(out)
	}
	c.JSON(http.StatusOK, gin.H{"output": out})
}
