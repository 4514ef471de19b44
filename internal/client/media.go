package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/igdb/internal/constants"
	"github.com/fivetwenty-io/igdb/internal/http"
	"github.com/fivetwenty-io/igdb/pkg/igdb"
)

// ImageEndpoint is an Endpoint whose records point at CDN images.
type ImageEndpoint[T igdb.ImageEntity] struct {
	*Endpoint[T]
	imageBaseURL string
}

// NewImageEndpoint creates an image client for path.
func NewImageEndpoint[T igdb.ImageEntity](httpClient *http.Client, path, imageBaseURL string) *ImageEndpoint[T] {
	return &ImageEndpoint[T]{
		Endpoint:     NewEndpoint[T](httpClient, path),
		imageBaseURL: imageBaseURL,
	}
}

// ImageURL resolves the record and returns the CDN URL of its jpg image.
func (c *ImageEndpoint[T]) ImageURL(ctx context.Context, id uint64, size igdb.ImageSize) (string, error) {
	return c.resolveURL(ctx, id, size, "jpg")
}

// DownloadByID resolves the record, fetches its image in size and writes it
// to destination. The image format follows the destination extension. The
// file is written under a temporary name and renamed once complete, so a
// failed download leaves nothing at destination.
func (c *ImageEndpoint[T]) DownloadByID(ctx context.Context, id uint64, destination string, size igdb.ImageSize) error {
	if destination == "" {
		return fmt.Errorf("downloading %s %d: %w: destination must not be empty", c.path, id, igdb.ErrInvalidArgument)
	}

	imageURL, err := c.resolveURL(ctx, id, size, igdb.ImageExtension(destination))
	if err != nil {
		return err
	}

	body, err := c.httpClient.Stream(ctx, imageURL)
	if err != nil {
		return fmt.Errorf("downloading %s %d: %w", c.path, id, err)
	}
	defer func() { _ = body.Close() }()

	err = writeFileAtomic(ctx, destination, body)
	if err != nil {
		return fmt.Errorf("downloading %s %d to %s: %w", c.path, id, destination, err)
	}

	return nil
}

func (c *ImageEndpoint[T]) resolveURL(ctx context.Context, id uint64, size igdb.ImageSize, ext string) (string, error) {
	if !size.Valid() {
		return "", fmt.Errorf("resolving %s %d: %w: %w %d", c.path, id, igdb.ErrInvalidArgument, igdb.ErrUnknownImageSize, int(size))
	}

	record, err := c.GetFirstByID(ctx, id)
	if err != nil {
		return "", err
	}

	if record.GetImageID() == "" {
		return "", fmt.Errorf("resolving %s %d: %w: record has no image id", c.path, id, igdb.ErrNotFound)
	}

	imageURL, err := igdb.ImageURL(c.imageBaseURL, size, record.GetImageID(), ext)
	if err != nil {
		return "", fmt.Errorf("resolving %s %d: %w", c.path, id, err)
	}

	return imageURL, nil
}

// MediaEndpoint is an ImageEndpoint for resources linked to a game.
type MediaEndpoint[T igdb.ImageEntity] struct {
	*ImageEndpoint[T]
}

// NewMediaEndpoint creates a game-linked image client for path.
func NewMediaEndpoint[T igdb.ImageEntity](httpClient *http.Client, path, imageBaseURL string) *MediaEndpoint[T] {
	return &MediaEndpoint[T]{ImageEndpoint: NewImageEndpoint[T](httpClient, path, imageBaseURL)}
}

// GetByGameID returns records whose game field equals gameID.
func (c *MediaEndpoint[T]) GetByGameID(ctx context.Context, gameID uint64, limit int) ([]T, error) {
	return c.getByGameID(ctx, gameID, limit)
}

// errWriter remembers write failures so they can be told apart from
// failures reading the response body.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}

	return n, err
}

func writeFileAtomic(ctx context.Context, destination string, body io.Reader) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(destination), "."+filepath.Base(destination)+".*.part")
	if err != nil {
		return fmt.Errorf("%w: %w", igdb.ErrIO, err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	ew := &errWriter{w: tmp}

	_, err = io.Copy(ew, body)
	if err != nil {
		if ew.err != nil {
			return fmt.Errorf("%w: %w", igdb.ErrIO, err)
		}

		return http.ClassifyError(ctx, fmt.Errorf("reading image: %w", err))
	}

	err = tmp.Chmod(constants.DownloadFilePerm)
	if err != nil {
		return fmt.Errorf("%w: %w", igdb.ErrIO, err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("%w: %w", igdb.ErrIO, err)
	}

	err = os.Rename(tmp.Name(), destination)
	if err != nil {
		return fmt.Errorf("%w: %w", igdb.ErrIO, err)
	}

	return nil
}

