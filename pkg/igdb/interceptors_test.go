package igdb_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBlocked = errors.New("blocked")

type recordingLogger struct {
	mu      sync.Mutex
	entries []string
	fields  []map[string]interface{}
}

func (l *recordingLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, level+": "+msg)
	l.fields = append(l.fields, fields)
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func TestInterceptorChain_Order(t *testing.T) {
	t.Parallel()

	var executionOrder []string

	chain := igdb.NewInterceptorChain().
		AddRequestInterceptor(func(ctx context.Context, req *igdb.Request) error {
			executionOrder = append(executionOrder, "first")

			return nil
		}).
		AddRequestInterceptor(func(ctx context.Context, req *igdb.Request) error {
			executionOrder = append(executionOrder, "second")

			return nil
		}).
		AddResponseInterceptor(func(ctx context.Context, req *igdb.Request, resp *igdb.Response) error {
			executionOrder = append(executionOrder, "response")

			return nil
		})

	req := &igdb.Request{Method: "POST", Path: "games"}

	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
	require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), req, &igdb.Response{StatusCode: 200}))

	assert.Equal(t, []string{"first", "second", "response"}, executionOrder)
	assert.False(t, chain.Empty())
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	called := false

	chain := igdb.NewInterceptorChain().
		AddRequestInterceptor(func(ctx context.Context, req *igdb.Request) error {
			return errBlocked
		}).
		AddRequestInterceptor(func(ctx context.Context, req *igdb.Request) error {
			called = true

			return nil
		})

	err := chain.ExecuteRequestInterceptors(context.Background(), &igdb.Request{})
	require.ErrorIs(t, err, errBlocked)
	assert.False(t, called)
}

func TestInterceptorChain_Nil(t *testing.T) {
	t.Parallel()

	var chain *igdb.InterceptorChain

	assert.True(t, chain.Empty())
	assert.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), &igdb.Request{}))
	assert.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), &igdb.Request{}, &igdb.Response{}))
	assert.True(t, igdb.NewInterceptorChain().Empty())
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := igdb.HeaderInterceptor(map[string]string{"X-Request-ID": "123456"})

	req := &igdb.Request{}
	require.NoError(t, interceptor(context.Background(), req))
	assert.Equal(t, "123456", req.Headers.Get("X-Request-ID"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &igdb.Request{Method: "POST", Path: "games", Body: []byte("fields name;")}

	require.NoError(t, igdb.LoggingInterceptor(logger)(context.Background(), req))
	require.NoError(t, igdb.LoggingResponseInterceptor(logger)(context.Background(), req, &igdb.Response{StatusCode: 200}))
	require.NoError(t, igdb.LoggingResponseInterceptor(logger)(context.Background(), req, &igdb.Response{StatusCode: 500, Error: errBlocked}))

	assert.Equal(t, []string{"debug: API Request", "debug: API Response", "error: API Response Error"}, logger.entries)
	assert.Equal(t, "fields name;", logger.fields[0]["query"])
	assert.Equal(t, "blocked", logger.fields[2]["error"])
}
