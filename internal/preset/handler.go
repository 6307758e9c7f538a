package preset

import (
	"errors"
	"io"
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
	rg.GET("", h.list)                    // GET /presets
	rg.GET("/:name", h.load)              // GET /presets/:name
	rg.PUT("/:name", h.save)              // PUT /presets/:name
	rg.DELETE("/:name", h.remove)         // DELETE /presets/:name
	rg.GET("/:name/export", h.export)     // GET /presets/:name/export
	rg.POST("/import", h.importDocument)  // POST /presets/import?overwrite=true
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
			c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

type saveRequest struct {
	Organization models.OrganizationFields `json:"organization"`
	Website      models.WebSiteFields      `json:"website"`
}

func (h *Handler) save(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset: " + err.Error()})
		return
	}

	rec, err := h.Store.Save(c.Request.Context(), c.Param("name"), req.Organization, req.Website)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please enter a preset name"})
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
			c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": name})
}

func (h *Handler) export(c *gin.Context) {
	data, filename, err := h.Store.Export(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

func (h *Handler) importDocument(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read body failed"})
		return
	}

	overwrite := c.Query("overwrite") == "true"
	rec, err := h.Store.Import(c.Request.Context(), raw, overwrite)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPreset):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrExists):
			c.JSON(http.StatusConflict, gin.H{"error": "preset already exists; retry with overwrite=true"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "import failed"})
		}
		return
	}
	c.JSON(http.StatusOK, rec)
}
