package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"alethea-inspector/internal/app"
	"alethea-inspector/internal/services/mintreport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func newGraphQLNode(t *testing.T, status int, body string) (*httptest.Server, func() []string) {
	t.Helper()
	var mu sync.Mutex
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), bodies...)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr, noEnv)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRun_DefaultArguments(t *testing.T) {
	srv, bodies := newGraphQLNode(t, http.StatusOK, `{"data":{"balance":"42."}}`)

	out, _, err := execute(t, "run", "--service", srv.URL)
	require.NoError(t, err)

	assert.Contains(t, out, "To Address: "+app.DefaultAddress)
	assert.Contains(t, out, "Amount: 1000.")
	assert.Contains(t, out, mintreport.Advisory)

	got := bodies()
	require.Len(t, got, 2)
	assert.Equal(t, `{"query": "{ balance(owner: \"`+app.DefaultAddress+`\") }"}`, got[0])
}

func TestRun_PositionalArguments(t *testing.T) {
	srv, bodies := newGraphQLNode(t, http.StatusOK, `{"data":{"balance":"0."}}`)

	out, _, err := execute(t, "run", "deadbeef", "5.5", "--service", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "To Address: deadbeef")
	assert.Contains(t, out, "Amount: 5.5")
	for _, b := range bodies() {
		assert.NotContains(t, b, "5.5")
	}
}

func TestRun_Non200ExitsCleanly(t *testing.T) {
	srv, bodies := newGraphQLNode(t, http.StatusInternalServerError, "server error")

	out, _, err := execute(t, "run", "--service", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "500")
	assert.Contains(t, out, "server error")
	assert.Len(t, bodies(), 2)
}

func TestRun_TransportErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	out, _, err := execute(t, "run", "--service", url)
	require.Error(t, err)
	assert.ErrorIs(t, err, mintreport.ErrTransport)
	assert.Contains(t, out, mintreport.Advisory)
}

func TestRun_TooManyArgs(t *testing.T) {
	_, _, err := execute(t, "run", "a", "b", "c")
	assert.Error(t, err)
}

func TestRun_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "run", "--privacy-mode", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "privacy-mode")

	_, _, err = execute(t, "run", "--log-level", "chatty")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "--app", "")
	assert.Error(t, err)
}

func TestRun_DebugLogsGoToStderr(t *testing.T) {
	srv, _ := newGraphQLNode(t, http.StatusOK, `{"data":{}}`)

	out, logs, err := execute(t, "run", "--service", srv.URL, "--log-level", "debug", "--privacy-mode", "masked")
	require.NoError(t, err)
	assert.Contains(t, logs, "run_id")
	assert.Contains(t, logs, "body_sha256")
	assert.NotContains(t, logs, app.DefaultAddress)
	assert.NotContains(t, out, "run_id")
}

func TestInspect(t *testing.T) {
	srv, bodies := newGraphQLNode(t, http.StatusOK, `{"data":{"totalMinted":"1."}}`)

	out, _, err := execute(t, "inspect", "--service", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Total minted")
	got := bodies()
	require.Len(t, got, 3)
	assert.True(t, strings.Contains(got[2], "admin"))
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}
