package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/deppfellow/student-records/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIDocPath is the interactive docs page served at /docs. It loads
// openapi.json from /static.
const OpenAPIDocPath = "static/openapi.html"

// OpenAPIHandler serves the API documentation.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves the docs page uncached so edits show up on reload.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile(OpenAPIDocPath)

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
