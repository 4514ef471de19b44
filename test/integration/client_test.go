//go:build integration

package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const witcher3 = 1942

func TestGames_GetFirstByID(t *testing.T) {
	client := NewLiveClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	game, err := client.Games().GetFirstByID(ctx, witcher3)
	require.NoError(t, err)

	assert.Equal(t, uint64(witcher3), game.ID)
	assert.Contains(t, game.Name, "Witcher")
	assert.Equal(t, 2015, game.FirstReleaseDate.Time().Year())
}

func TestGames_CustomQuery(t *testing.T) {
	client := NewLiveClient(t)

	query := client.CreateRequest().
		AddField(igdb.FieldName).
		Contains(igdb.FieldName, "Zelda").
		SortBy(igdb.FieldName, igdb.Ascending).
		Limit(3)

	games, err := client.Games().Get(context.Background(), query)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(games), 3)

	for _, game := range games {
		assert.Contains(t, game.Name, "Zelda")
	}
}

func TestNotFound(t *testing.T) {
	client := NewLiveClient(t)

	_, err := client.Themes().GetFirstByName(context.Background(), "no theme has this name 8f1c")
	require.ErrorIs(t, err, igdb.ErrNotFound)
}

func TestCovers_Download(t *testing.T) {
	client := NewLiveClient(t)

	covers, err := client.Covers().GetByGameID(context.Background(), witcher3, 1)
	require.NoError(t, err)
	require.NotEmpty(t, covers)

	destination := filepath.Join(t.TempDir(), "cover.jpg")

	err = client.Covers().DownloadByID(context.Background(), covers[0].ID, destination, igdb.SizeThumb)
	require.NoError(t, err)

	info, err := os.Stat(destination)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
