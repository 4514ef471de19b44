package igdb

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ImageSize selects one of the renditions the media CDN serves.
type ImageSize int

// Image sizes.
const (
	SizeCoverSmall ImageSize = iota
	SizeScreenshotMed
	SizeCoverBig
	SizeLogoMed
	SizeScreenshotBig
	SizeScreenshotHuge
	SizeThumb
	SizeMicro
	Size720p
	Size1080p
	SizeOriginal
)

var imageSizeSegments = [...]string{
	SizeCoverSmall:     "cover_small",
	SizeScreenshotMed:  "screenshot_med",
	SizeCoverBig:       "cover_big",
	SizeLogoMed:        "logo_med",
	SizeScreenshotBig:  "screenshot_big",
	SizeScreenshotHuge: "screenshot_huge",
	SizeThumb:          "thumb",
	SizeMicro:          "micro",
	Size720p:           "720p",
	Size1080p:          "1080p",
	SizeOriginal:       "original",
}

// Valid reports whether the size is one of the known renditions.
func (s ImageSize) Valid() bool {
	return s >= 0 && int(s) < len(imageSizeSegments)
}

// String returns the URL segment of the size without the t_ prefix.
func (s ImageSize) String() string {
	if !s.Valid() {
		return fmt.Sprintf("ImageSize(%d)", int(s))
	}

	return imageSizeSegments[s]
}

// ImageSizes returns every known size in table order.
func ImageSizes() []ImageSize {
	sizes := make([]ImageSize, len(imageSizeSegments))
	for i := range imageSizeSegments {
		sizes[i] = ImageSize(i)
	}

	return sizes
}

// ParseImageSize maps a segment such as "cover_big" or "t_cover_big" to its size.
func ParseImageSize(name string) (ImageSize, error) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "t_")

	for i, segment := range imageSizeSegments {
		if segment == name {
			return ImageSize(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %w %q", ErrInvalidArgument, ErrUnknownImageSize, name)
}

// ParseImageFormat accepts jpg, png or webp, with or without a leading dot.
func ParseImageFormat(name string) (string, error) {
	format := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")

	switch format {
	case "jpg", "png", "webp":
		return format, nil
	default:
		return "", fmt.Errorf("%w: %w %q", ErrInvalidArgument, ErrUnknownImageFormat, name)
	}
}

// ImageExtension picks the file extension to request for a destination path.
// The CDN converts on the fly to png and webp; everything else is jpg.
func ImageExtension(destination string) string {
	switch strings.ToLower(filepath.Ext(destination)) {
	case ".png":
		return "png"
	case ".webp":
		return "webp"
	default:
		return "jpg"
	}
}

// ImageURL builds <base>/t_<size>/<imageID>.<ext>.
func ImageURL(base string, size ImageSize, imageID, ext string) (string, error) {
	if !size.Valid() {
		return "", fmt.Errorf("%w: %w %d", ErrInvalidArgument, ErrUnknownImageSize, int(size))
	}

	if imageID == "" {
		return "", fmt.Errorf("%w: image id must not be empty", ErrInvalidArgument)
	}

	if ext == "" {
		ext = "jpg"
	}

	return strings.TrimRight(base, "/") + "/t_" + size.String() + "/" + imageID + "." + ext, nil
}
