package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/pkg/auth"
)

func testApp(secret, issuer string) *fiber.App {
	app := fiber.New()
	app.Use(NewAuthMiddleware(secret, issuer))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userId")})
	})
	return app
}

func TestGenerateAndValidate(t *testing.T) {
	gen := NewGenerator("test-secret", "careerpath", time.Minute)
	user := auth.User{ID: uuid.New(), Name: "Ada"}

	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	app := testApp("test-secret", "careerpath")
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Bare token without the Bearer prefix is also accepted.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejections(t *testing.T) {
	gen := NewGenerator("test-secret", "careerpath", time.Minute)
	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	cases := map[string]struct {
		app    *fiber.App
		header string
	}{
		"missing header": {app: testApp("test-secret", "careerpath"), header: ""},
		"garbage token":  {app: testApp("test-secret", "careerpath"), header: "Bearer not.a.jwt"},
		"wrong secret":   {app: testApp("other-secret", "careerpath"), header: "Bearer " + token},
		"wrong issuer":   {app: testApp("test-secret", "elsewhere"), header: "Bearer " + token},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := tc.app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestExpiredToken(t *testing.T) {
	gen := NewGenerator("test-secret", "careerpath", -time.Minute)
	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	app := testApp("test-secret", "careerpath")
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
