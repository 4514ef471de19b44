package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/fivetwenty-io/igdb/internal/constants"
	"github.com/fivetwenty-io/igdb/internal/logging"
	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
)

// ErrInvalidParallelism is returned for a --parallel value below one.
var ErrInvalidParallelism = errors.New("parallel must be at least 1")

// downloader is the part of the image endpoints used by download.
type downloader interface {
	DownloadByID(ctx context.Context, id uint64, destination string, size igdb.ImageSize) error
}

// DownloadOptions controls a batch of image downloads.
type DownloadOptions struct {
	Dir       string
	Prefix    string
	Extension string
	Size      igdb.ImageSize
	Parallel  int
}

// destination returns the file an image is saved to.
func (o DownloadOptions) destination(id uint64) string {
	name := o.Prefix + "_" + strconv.FormatUint(id, 10) + "." + strings.TrimPrefix(o.Extension, ".")

	return filepath.Join(o.Dir, name)
}

func newDownloadCommand[T igdb.ImageEntity](path string, endpoint func(igdb.Client) igdb.ImageEndpointClient[T]) *cobra.Command {
	var (
		dir      string
		size     string
		ext      string
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "download ID...",
		Short: "Download images",
		Long: fmt.Sprintf(`Download the images of the given records to DIR/%s_ID.EXT.

Sizes: %s`, path, imageSizeList()),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			imageSize, err := igdb.ParseImageSize(size)
			if err != nil {
				return err
			}

			_, err = igdb.ParseImageFormat(ext)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			return downloadAll(cmd.Context(), cmd.OutOrStdout(), endpoint(client), ids, DownloadOptions{
				Dir:       dir,
				Prefix:    path,
				Extension: ext,
				Size:      imageSize,
				Parallel:  parallel,
			})
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to save images to")
	cmd.Flags().StringVar(&size, "size", igdb.SizeOriginal.String(), "image size")
	cmd.Flags().StringVar(&ext, "ext", "jpg", "image format: jpg, png or webp")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", constants.DefaultConcurrencyLimit, "number of concurrent downloads")

	return cmd
}

// downloadAll downloads every id on a worker pool. Each failure is logged
// and the joined errors are returned once all downloads have finished.
func downloadAll(ctx context.Context, out io.Writer, endpoint downloader, ids []uint64, opts DownloadOptions) error {
	if opts.Parallel < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidParallelism, opts.Parallel)
	}

	format, err := igdb.ParseImageFormat(opts.Extension)
	if err != nil {
		return err
	}

	opts.Extension = format

	pool, err := ants.NewPool(opts.Parallel)
	if err != nil {
		return fmt.Errorf("failed to create download pool: %w", err)
	}
	defer pool.Release()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	errCh := make(chan error, len(ids))

	for _, id := range ids {
		id := id
		destination := opts.destination(id)

		wg.Add(1)

		err := pool.Submit(func() {
			defer wg.Done()

			err := endpoint.DownloadByID(ctx, id, destination, opts.Size)
			if err != nil {
				logging.Logger().WithError(err).WithField("id", id).Error("download failed")
				errCh <- err

				return
			}

			mu.Lock()
			defer mu.Unlock()

			_, _ = fmt.Fprintf(out, "%d -> %s\n", id, destination)
		})
		if err != nil {
			wg.Done()
			errCh <- fmt.Errorf("failed to submit download of %d: %w", id, err)
		}
	}

	wg.Wait()
	close(errCh)

	errs := []error{}
	for err := range errCh {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrDownloadsFailed}, errs...)...)
	}

	return nil
}

func imageSizeList() string {
	sizes := igdb.ImageSizes()
	names := make([]string, 0, len(sizes))

	for _, size := range sizes {
		names = append(names, size.String())
	}

	return strings.Join(names, ", ")
}
