package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jortega/smartretail-api/internal/interfaces/http"
	pkgjwt "github.com/jortega/smartretail-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "smartretail-test"
	testAudience  = "smartretail-clients-test"
	testExpMin    = 60
)

var testJWTSettings = apphttp.JWTSettings{
	Secret:   testJWTSecret,
	Issuer:   testIssuer,
	Audience: testAudience,
}

// buildMiddlewareApp construye una aplicación Fiber mínima con el
// AuthMiddleware y un handler dummy que devuelve 200 y el usuario del
// contexto si el token pasa.
func buildMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSettings),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":       true,
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT válido para el usuario indicado.
func tokenFor(t *testing.T, username string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, username, testIssuer, testAudience, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doProtected lanza una petición GET /protected y devuelve la respuesta.
func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Token válido → pasa el middleware y el usuario queda en el contexto.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildMiddlewareApp()
	resp := doProtected(t, app, tokenFor(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["username"], "el usuario del token debe llegar al handler")
}

// Caso 2: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildMiddlewareApp()
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 3: Header sin esquema Bearer → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_EsquemaIncorrecto_Retorna401(t *testing.T) {
	app := buildMiddlewareApp()
	resp := doProtected(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 4: Token malformado → HTTP 401.
func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildMiddlewareApp()
	resp := doProtected(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token firmado con otra clave → HTTP 401.
func TestAuthMiddleware_FirmaIncorrecta_Retorna401(t *testing.T) {
	app := buildMiddlewareApp()
	tok, err := pkgjwt.Generate("otra-clave-distinta", "admin", testIssuer, testAudience, testExpMin)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: Token expirado → HTTP 401.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildMiddlewareApp()
	tok, err := pkgjwt.Generate(testJWTSecret, "admin", testIssuer, testAudience, -5)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 7: Audiencia distinta a la configurada → HTTP 401.
func TestAuthMiddleware_AudienciaIncorrecta_Retorna401(t *testing.T) {
	app := buildMiddlewareApp()
	tok, err := pkgjwt.Generate(testJWTSecret, "admin", testIssuer, "otra-audiencia", testExpMin)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
