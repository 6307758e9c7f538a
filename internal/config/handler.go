package config

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schemaforge/pkg/models"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)            // GET /configs
	rg.GET("/:name", h.load)      // GET /configs/:name
	rg.PUT("/:name", h.save)      // PUT /configs/:name
	rg.DELETE("/:name", h.remove) // DELETE /configs/:name
}

func (h *Handler) list(c *gin.Context) {
	names, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(names), "names": names})
}

func (h *Handler) load(c *gin.Context) {
	rec, err := h.Store.Load(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "configuration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) save(c *gin.Context) {
	var state models.FormState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form state: " + err.Error()})
		return
	}

	rec, err := h.Store.Save(c.Request.Context(), c.Param("name"), state)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please enter a configuration name"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) remove(c *gin.Context) {
	name := c.Param("name")
	if err := h.Store.Delete(c.Request.Context(), name); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "configuration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": name})
}
