package middleware

import (
	"Burger-App-Backend/domain"
	"Burger-App-Backend/pkg/session"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, session.Store) {
	t.Helper()
	store := session.NewMemoryStore(session.DefaultTTL)
	m := NewMiddleware()

	app := fiber.New()
	app.Get("/protected", m.SessionMiddleware(store), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("user_id")})
	})
	app.Get("/admin", m.SessionMiddleware(store), m.AdminMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, store
}

func login(t *testing.T, store session.Store, role string) *http.Cookie {
	t.Helper()
	token, err := store.Create(context.Background(), session.Data{UserID: "u-1", Role: role})
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func TestSessionMiddlewareNoCookie(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Not logged in", payload.Message)
}

func TestSessionMiddlewareUnknownToken(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "stale-token"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddlewareValidCookie(t *testing.T) {
	app, store := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(login(t, store, domain.RoleUser))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminMiddlewareRejectsUserRole(t *testing.T) {
	app, store := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(login(t, store, domain.RoleUser))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	app, store := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(login(t, store, domain.RoleAdmin))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSessionDestroyedAfterLogout(t *testing.T) {
	app, store := newTestApp(t)
	cookie := login(t, store, domain.RoleUser)

	require.NoError(t, store.Destroy(context.Background(), cookie.Value))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
