package igdb_test

import (
	"testing"

	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const imageBase = "https://images.igdb.com/igdb/image/upload"

func TestImageSize_String(t *testing.T) {
	t.Parallel()

	expected := []string{
		"cover_small", "screenshot_med", "cover_big", "logo_med", "screenshot_big",
		"screenshot_huge", "thumb", "micro", "720p", "1080p", "original",
	}

	sizes := igdb.ImageSizes()
	require.Len(t, sizes, len(expected))

	for i, size := range sizes {
		assert.Equal(t, expected[i], size.String())
		assert.True(t, size.Valid())
	}

	assert.False(t, igdb.ImageSize(-1).Valid())
	assert.Equal(t, "ImageSize(99)", igdb.ImageSize(99).String())
}

func TestParseImageSize(t *testing.T) {
	t.Parallel()

	for _, size := range igdb.ImageSizes() {
		parsed, err := igdb.ParseImageSize(size.String())
		require.NoError(t, err)
		assert.Equal(t, size, parsed)
	}

	parsed, err := igdb.ParseImageSize(" T_Cover_Big ")
	require.NoError(t, err)
	assert.Equal(t, igdb.SizeCoverBig, parsed)

	_, err = igdb.ParseImageSize("poster")
	require.Error(t, err)
	assert.ErrorIs(t, err, igdb.ErrInvalidArgument)
	assert.ErrorIs(t, err, igdb.ErrUnknownImageSize)
}

func TestParseImageFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "jpg", expected: "jpg"},
		{input: ".PNG", expected: "png"},
		{input: " webp ", expected: "webp"},
	}

	for _, tt := range tests {
		format, err := igdb.ParseImageFormat(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, format)
	}

	for _, input := range []string{"gif", "jpeg", ""} {
		_, err := igdb.ParseImageFormat(input)
		require.Error(t, err, input)
		assert.ErrorIs(t, err, igdb.ErrInvalidArgument)
		assert.ErrorIs(t, err, igdb.ErrUnknownImageFormat)
	}
}

func TestImageURL(t *testing.T) {
	t.Parallel()

	url, err := igdb.ImageURL(imageBase, igdb.SizeCoverBig, "co1wyy", "jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://images.igdb.com/igdb/image/upload/t_cover_big/co1wyy.jpg", url)

	url, err = igdb.ImageURL(imageBase+"/", igdb.Size1080p, "sc6lrx", "")
	require.NoError(t, err)
	assert.Equal(t, "https://images.igdb.com/igdb/image/upload/t_1080p/sc6lrx.jpg", url)

	_, err = igdb.ImageURL(imageBase, igdb.ImageSize(42), "co1wyy", "jpg")
	assert.ErrorIs(t, err, igdb.ErrInvalidArgument)

	_, err = igdb.ImageURL(imageBase, igdb.SizeThumb, "", "jpg")
	assert.ErrorIs(t, err, igdb.ErrInvalidArgument)
}

func TestImageExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "png", igdb.ImageExtension("/tmp/cover.PNG"))
	assert.Equal(t, "webp", igdb.ImageExtension("art.webp"))
	assert.Equal(t, "jpg", igdb.ImageExtension("shot.jpeg"))
	assert.Equal(t, "jpg", igdb.ImageExtension("no-extension"))
}
