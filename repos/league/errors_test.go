package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage(t *testing.T) {
	cases := map[string]string{
		`"Team not found"`:                         "Team not found",
		`{"message":"Jersey taken","error":"x"}`:   "Jersey taken",
		`{"error":"Conflict"}`:                     "Conflict",
		`Service Unavailable`:                      "Service Unavailable",
		`{"status":500}`:                           "",
		`<html><body>Bad gateway</body></html>`:    "",
		"   ":                                      "",
	}

	for body, want := range cases {
		assert.Equal(t, want, extractMessage([]byte(body)), "body %q", body)
	}
}

func TestAPIErrorString(t *testing.T) {
	err := newAPIError(409, []byte(`{"message":"exists"}`))
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "exists")
}
