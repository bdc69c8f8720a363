//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

func AssertHTMLResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, contains ...string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	for _, s := range contains {
		assert.Contains(t, w.Body.String(), s)
	}
}
