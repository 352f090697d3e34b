package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-resty/resty/v2"
)

func errorResponse(t *testing.T, status int, contentType, body string) *resty.Response {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().SetContext(context.Background()).Post(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestExtractErrorMessage_JSONKeys(t *testing.T) {
	resp := errorResponse(t, 400, "application/json", `{"message":"bad branch"}`)
	assert.Equal(t, "bad branch", ExtractErrorMessage(resp))

	resp = errorResponse(t, 400, "application/json", `{"msg":"nope"}`)
	assert.Equal(t, "nope", ExtractErrorMessage(resp))

	resp = errorResponse(t, 400, "application/json", `{"detail":"missing field"}`)
	assert.Equal(t, "missing field", ExtractErrorMessage(resp))
}

func TestExtractErrorMessage_JSONPriority(t *testing.T) {
	resp := errorResponse(t, 400, "application/json", `{"detail":"second","message":"first"}`)
	assert.Equal(t, "first", ExtractErrorMessage(resp))
}

func TestExtractErrorMessage_JSONFallbacks(t *testing.T) {
	resp := errorResponse(t, 400, "application/json", `{}`)
	assert.Equal(t, "", ExtractErrorMessage(resp))

	resp = errorResponse(t, 400, "application/json", `{"error_code":17}`)
	assert.Equal(t, `{"error_code":17}`, ExtractErrorMessage(resp))

	resp = errorResponse(t, 400, "application/json", `not json at all`)
	assert.Equal(t, "", ExtractErrorMessage(resp))
}

func TestExtractErrorMessage_PlainText(t *testing.T) {
	resp := errorResponse(t, 500, "text/plain; charset=utf-8", "  something broke \n")
	assert.Equal(t, "something broke", ExtractErrorMessage(resp))
}

func TestExtractErrorMessage_OtherContentType(t *testing.T) {
	resp := errorResponse(t, 500, "text/html", "<html>oops</html>")
	assert.Equal(t, "", ExtractErrorMessage(resp))
}

func TestMessageOrDefault(t *testing.T) {
	assert.Equal(t, "explicit", MessageOrDefault("explicit", 500))
	assert.Equal(t, "Service unavailable, please try again later", MessageOrDefault("", 503))
	assert.Equal(t, "Please check your inputs and try again", MessageOrDefault("", 400))
	assert.Equal(t, "", MessageOrDefault("", 404))
}

func TestAPIErrorFormatting(t *testing.T) {
	err := &APIError{StatusCode: 500}
	assert.Contains(t, err.Error(), "Service unavailable, please try again later")

	// the stored message stays raw; defaulting happens only when formatting
	assert.Equal(t, "", err.Message)
}

func TestAuthenticationErrorFormatting(t *testing.T) {
	err := &AuthenticationError{Message: "bad creds", StatusCode: 403}
	assert.Contains(t, err.Error(), "bad creds")

	wrapped := &AuthenticationError{Err: context.DeadlineExceeded}
	assert.ErrorIs(t, wrapped, context.DeadlineExceeded)
}
