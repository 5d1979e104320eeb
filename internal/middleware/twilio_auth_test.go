package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Post("/webhook/whatsapp", ValidateTwilioSignature(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func signedRequest(t *testing.T, authToken string, form url.Values, sign bool) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if sign {
		params := make(map[string]string, len(form))
		for k := range form {
			params[k] = form.Get(k)
		}
		sig := computeSignature(authToken, "http://example.com/webhook/whatsapp", params)
		req.Header.Set("X-Twilio-Signature", sig)
	}
	return req
}

func TestValidSignaturePasses(t *testing.T) {
	t.Setenv("TWILIO_AUTH_TOKEN", "test-token")
	app := newProtectedApp()

	form := url.Values{
		"From": {"whatsapp:+51987654321"},
		"Body": {"hola"},
	}
	resp, err := app.Test(signedRequest(t, "test-token", form, true))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInvalidSignatureRejected(t *testing.T) {
	t.Setenv("TWILIO_AUTH_TOKEN", "test-token")
	app := newProtectedApp()

	form := url.Values{"Body": {"hola"}}
	resp, err := app.Test(signedRequest(t, "wrong-token", form, true))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMissingSignatureRejected(t *testing.T) {
	t.Setenv("TWILIO_AUTH_TOKEN", "test-token")
	app := newProtectedApp()

	form := url.Values{"Body": {"hola"}}
	resp, err := app.Test(signedRequest(t, "", form, false))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMissingAuthTokenIsServerError(t *testing.T) {
	t.Setenv("TWILIO_AUTH_TOKEN", "")
	app := newProtectedApp()

	form := url.Values{"Body": {"hola"}}
	req := signedRequest(t, "anything", form, false)
	req.Header.Set("X-Twilio-Signature", "bogus")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
