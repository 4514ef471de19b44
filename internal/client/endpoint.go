package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/igdb/internal/http"
	"github.com/fivetwenty-io/igdb/pkg/igdb"
)

// Endpoint is the generic query client bound to one resource path.
type Endpoint[T igdb.Entity] struct {
	httpClient *http.Client
	path       string
}

// NewEndpoint creates a client for path decoding records into T.
func NewEndpoint[T igdb.Entity](httpClient *http.Client, path string) *Endpoint[T] {
	return &Endpoint[T]{
		httpClient: httpClient,
		path:       path,
	}
}

// Path returns the resource path segment.
func (c *Endpoint[T]) Path() string {
	return c.path
}

// Get renders query, posts it and decodes the records. An invalid query is
// reported before any request is sent. No matches yield an empty slice.
func (c *Endpoint[T]) Get(ctx context.Context, query *igdb.Query) ([]T, error) {
	items, err := c.get(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.path, err)
	}

	return items, nil
}

// GetByID returns all fields of up to limit records with the given id.
func (c *Endpoint[T]) GetByID(ctx context.Context, id uint64, limit int) ([]T, error) {
	query := igdb.NewQuery().
		AllFields().
		AddWhere(igdb.FieldID, igdb.OpEqual, strconv.FormatUint(id, 10)).
		Limit(limit)

	items, err := c.get(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s %d: %w", c.path, id, err)
	}

	return items, nil
}

// GetFirstByID returns the record with the given id.
func (c *Endpoint[T]) GetFirstByID(ctx context.Context, id uint64) (T, error) {
	var zero T

	items, err := c.GetByID(ctx, id, 1)
	if err != nil {
		return zero, err
	}

	if len(items) == 0 {
		return zero, fmt.Errorf("getting %s %d: %w", c.path, id, igdb.ErrNotFound)
	}

	return items[0], nil
}

// GetByName returns records whose name contains name.
func (c *Endpoint[T]) GetByName(ctx context.Context, name string, limit int) ([]T, error) {
	if name == "" {
		return nil, fmt.Errorf("getting %s by name: %w: name must not be empty", c.path, igdb.ErrInvalidArgument)
	}

	query := igdb.NewQuery().
		AllFields().
		Contains(igdb.FieldName, name).
		Limit(limit)

	items, err := c.get(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s by name %q: %w", c.path, name, err)
	}

	return items, nil
}

// GetFirstByName returns the first record whose name contains name.
func (c *Endpoint[T]) GetFirstByName(ctx context.Context, name string) (T, error) {
	var zero T

	items, err := c.GetByName(ctx, name, 1)
	if err != nil {
		return zero, err
	}

	if len(items) == 0 {
		return zero, fmt.Errorf("getting %s by name %q: %w", c.path, name, igdb.ErrNotFound)
	}

	return items[0], nil
}

func (c *Endpoint[T]) getByGameID(ctx context.Context, gameID uint64, limit int) ([]T, error) {
	query := igdb.NewQuery().
		AllFields().
		AddWhere(igdb.FieldGame, igdb.OpEqual, strconv.FormatUint(gameID, 10)).
		Limit(limit)

	items, err := c.get(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s for game %d: %w", c.path, gameID, err)
	}

	return items, nil
}

func (c *Endpoint[T]) get(ctx context.Context, query *igdb.Query) ([]T, error) {
	if query == nil {
		query = igdb.NewQuery()
	}

	body, err := query.Render()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, c.path, body)
	if err != nil {
		return nil, err
	}

	return decodeList[T](resp.Body)
}

// GameEndpoint is an Endpoint for resources linked to a game.
type GameEndpoint[T igdb.Entity] struct {
	*Endpoint[T]
}

// NewGameEndpoint creates a game-linked client for path.
func NewGameEndpoint[T igdb.Entity](httpClient *http.Client, path string) *GameEndpoint[T] {
	return &GameEndpoint[T]{Endpoint: NewEndpoint[T](httpClient, path)}
}

// GetByGameID returns records whose game field equals gameID.
func (c *GameEndpoint[T]) GetByGameID(ctx context.Context, gameID uint64, limit int) ([]T, error) {
	return c.getByGameID(ctx, gameID, limit)
}
