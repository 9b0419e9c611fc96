package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirphl/linkbio/app/services"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing-32-chars"

func newTokenService(t *testing.T, ttl time.Duration) services.TokenService {
	t.Helper()
	svc, err := services.NewTokenService(ttl, "test-issuer", "test-audience", false, "", "", testSecret)
	require.NoError(t, err)
	return svc
}

func newAuthApp(svc services.TokenService) *fiber.App {
	app := fiber.New()
	app.Get("/me", NewAuthMiddleware(svc).Authenticate(), func(c fiber.Ctx) error {
		owner, ok := GetOwnerIDFromContext(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		claims, ok := GetTokenClaimsFromContext(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"owner": owner, "jti": claims.TokenID})
	})
	return app
}

func TestAuthenticate(t *testing.T) {
	svc := newTokenService(t, time.Hour)
	valid, err := svc.GenerateToken("owner-42")
	require.NoError(t, err)
	expired, err := newTokenService(t, -time.Minute).GenerateToken("owner-42")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "missing header", header: "", wantStatus: 401, wantCode: "MISSING_AUTHORIZATION_HEADER"},
		{name: "not bearer", header: "Basic abc", wantStatus: 401, wantCode: "INVALID_AUTHORIZATION_FORMAT"},
		{name: "bare scheme", header: "Bearer", wantStatus: 401, wantCode: "INVALID_AUTHORIZATION_FORMAT"},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: 401, wantCode: "TOKEN_INVALID"},
		{name: "expired token", header: "Bearer " + expired, wantStatus: 401, wantCode: "TOKEN_EXPIRED"},
		{name: "valid token", header: "Bearer " + valid, wantStatus: 200},
	}

	app := newAuthApp(svc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["error"].(map[string]any)["code"])
				return
			}
			assert.Equal(t, "owner-42", body["owner"])
			assert.NotEmpty(t, body["jti"])
		})
	}
}
