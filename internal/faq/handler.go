package faq

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schemaforge/internal/jsonld"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse", h.parse)       // POST /faq/parse
	rg.POST("/generate", h.generate) // POST /faq/generate
	rg.POST("/html", h.fragment)     // POST /faq/html
}

type parseRequest struct {
	Text string `json:"text"`
}

func (h *Handler) parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	items := Parse(req.Text)
	c.JSON(http.StatusOK, gin.H{"total": len(items), "items": items})
}

func (h *Handler) generate(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	items := Parse(req.Text)
	if len(items) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no valid Q:/A: pairs found"})
		return
	}

	out, err := Render(BuildPage(items))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generate failed"})
		return
	}
	if c.Query("wrap") == "script" {
		out = jsonld.WrapScript(out)
	}
	c.JSON(http.StatusOK, gin.H{"output": out})
}

func (h *Handler) fragment(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	items := Parse(req.Text)
	if len(items) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no valid Q:/A: pairs found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": Fragment(items)})
}
