package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		Views: html.New("../../../views", ".html"),
	})
	NewHttpRouter().registerPublicRoutes(app)
	return app
}

func TestPageRoutes_AllRender(t *testing.T) {
	app := newTestApp()

	for _, route := range PageRoutes() {
		req := httptest.NewRequest(http.MethodGet, route.Path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err, route.Path)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, route.Path)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err, route.Path)
		assert.Contains(t, string(body), route.Title, route.Path)
	}
}

func TestPageRoutes_UniquePaths(t *testing.T) {
	seen := make(map[string]string)
	for _, route := range PageRoutes() {
		if view, dup := seen[route.Path]; dup {
			t.Fatalf("path %s mapped to both %s and %s", route.Path, view, route.View)
		}
		seen[route.Path] = route.View
	}
}

func TestPageRoutes_ViewFilesExist(t *testing.T) {
	for _, route := range PageRoutes() {
		_, err := os.Stat("../../../views/" + route.View + ".html")
		assert.NoError(t, err, "missing view for %s", route.Path)
	}
}

func TestPageRoutes_UnknownPathFallsThrough(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPageRoutes_RenderingIsIdempotent(t *testing.T) {
	app := newTestApp()

	render := func() string {
		req := httptest.NewRequest(http.MethodGet, "/home", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(body)
	}

	assert.Equal(t, render(), render())
}
