package igdb_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &igdb.APIError{Title: "Syntax Error", Status: 400, Cause: "Missing `;` at end of query"}
	assert.Equal(t, "Syntax Error: Missing `;` at end of query (status: 400)", err.Error())

	err = &igdb.APIError{Title: "Authorization Failure", Status: 401}
	assert.Equal(t, "Authorization Failure (status: 401)", err.Error())
}

func TestResponseError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response *igdb.ResponseError
		expected string
	}{
		{
			name:     "empty errors",
			response: &igdb.ResponseError{StatusCode: 502},
			expected: "unexpected status 502 Bad Gateway",
		},
		{
			name: "single error",
			response: &igdb.ResponseError{
				StatusCode: 400,
				Errors:     []igdb.APIError{{Title: "Syntax Error", Status: 400}},
			},
			expected: "Syntax Error (status: 400)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.response.Error())
		})
	}

	multi := &igdb.ResponseError{
		StatusCode: 400,
		Errors:     []igdb.APIError{{Title: "a", Status: 400}, {Title: "b", Status: 400}},
	}
	assert.Contains(t, multi.Error(), "multiple errors")
}

func TestParseResponseError(t *testing.T) {
	t.Parallel()

	t.Run("list payload", func(t *testing.T) {
		t.Parallel()

		errResp := igdb.ParseResponseError(400, []byte(`[{"title":"Syntax Error","status":400,"cause":"bad field"}]`))
		require.Len(t, errResp.Errors, 1)
		assert.Equal(t, "Syntax Error", errResp.FirstError().Title)
		assert.Equal(t, "bad field", errResp.FirstError().Cause)
	})

	t.Run("single object payload", func(t *testing.T) {
		t.Parallel()

		errResp := igdb.ParseResponseError(401, []byte(`{"title":"Authorization Failure","status":401}`))
		require.Len(t, errResp.Errors, 1)
		assert.Equal(t, 401, errResp.FirstError().Status)
	})

	t.Run("plain text payload", func(t *testing.T) {
		t.Parallel()

		errResp := igdb.ParseResponseError(500, []byte("upstream exploded"))
		require.Len(t, errResp.Errors, 1)
		assert.Equal(t, "Internal Server Error", errResp.FirstError().Title)
		assert.Equal(t, "upstream exploded", errResp.FirstError().Cause)
	})

	t.Run("empty payload", func(t *testing.T) {
		t.Parallel()

		errResp := igdb.ParseResponseError(503, nil)
		assert.Nil(t, errResp.FirstError())
		assert.Equal(t, 503, errResp.StatusCode)
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	notFound := &igdb.ResponseError{StatusCode: 404}
	unauthorized := fmt.Errorf("getting games: %w", &igdb.ResponseError{StatusCode: 401})
	forbidden := &igdb.ResponseError{StatusCode: 403}

	assert.True(t, igdb.IsNotFound(notFound))
	assert.True(t, igdb.IsNotFound(fmt.Errorf("getting game 1: %w", igdb.ErrNotFound)))
	assert.False(t, igdb.IsNotFound(unauthorized))

	assert.True(t, igdb.IsUnauthorized(unauthorized))
	assert.True(t, igdb.IsUnauthorized(forbidden))
	assert.False(t, igdb.IsUnauthorized(notFound))
	assert.False(t, igdb.IsUnauthorized(context.Canceled))

	assert.True(t, igdb.IsTransport(notFound))
	assert.True(t, errors.Is(unauthorized, igdb.ErrTransport))
	assert.False(t, igdb.IsTransport(igdb.ErrDecode))

	assert.True(t, igdb.IsTimeout(fmt.Errorf("%w: deadline", igdb.ErrTimeout)))
	assert.False(t, igdb.IsTimeout(igdb.ErrTransport))

	assert.True(t, igdb.IsDecode(fmt.Errorf("%w: id missing", igdb.ErrDecode)))
	assert.True(t, igdb.IsIO(fmt.Errorf("writing cover: %w", igdb.ErrIO)))
	assert.True(t, igdb.IsInvalidArgument(igdb.NewQuery().Limit(0).Err()))
}
