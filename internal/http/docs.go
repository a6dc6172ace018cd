package http

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.json
var openAPIDocument []byte

//go:embed apidocs.html
var apiDocsPage []byte

func (h *Handler) apiDocs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", apiDocsPage)
}

func (h *Handler) openAPISpec(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", openAPIDocument)
}
