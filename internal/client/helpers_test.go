package client_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fivetwenty-io/igdb/internal/client"
	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedCall is one request seen by a fake API server.
type recordedCall struct {
	Path string
	Body string
}

// fakeAPI serves canned bodies per resource path and records every call.
type fakeAPI struct {
	mu        sync.Mutex
	calls     []recordedCall
	responses map[string]string
	status    int
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{Path: r.URL.Path, Body: string(body)})
	response, ok := f.responses[r.URL.Path]
	status := f.status
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
	}

	if !ok {
		response = "[]"
	}

	_, _ = w.Write([]byte(response))
}

func (f *fakeAPI) Calls() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]recordedCall(nil), f.calls...)
}

// newTestClient starts a fake API and a fake image CDN and returns a client
// pointed at both. cdn may be nil.
func newTestClient(t *testing.T, api *fakeAPI, cdn http.Handler) *client.Client {
	t.Helper()

	apiServer := httptest.NewServer(api)
	t.Cleanup(apiServer.Close)

	config := &igdb.Config{
		ClientID:    "client-id",
		AccessToken: "access-token",
		BaseURL:     apiServer.URL,
	}

	if cdn != nil {
		cdnServer := httptest.NewServer(cdn)
		t.Cleanup(cdnServer.Close)

		config.ImageBaseURL = cdnServer.URL
	}

	c, err := client.New(config)
	require.NoError(t, err)

	return c
}

func assertNoCalls(t *testing.T, api *fakeAPI) {
	t.Helper()

	assert.Empty(t, api.Calls(), "no request must be sent")
}
