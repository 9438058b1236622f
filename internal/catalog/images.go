package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"price-history-viewer/internal/cache"
	"price-history-viewer/internal/names"
)

// urlMarker splits a catalog line into name and URL. Item names routinely
// contain the CSV delimiter, so the split is by content, not by column.
const urlMarker = "https://"

// Images maps item names to artwork URLs, tolerant of the name formatting
// drift between catalog producers.
type Images struct {
	index *names.Index
}

// Lookup resolves the artwork URL for an item name, trying every historical
// normalization of the name.
func (i Images) Lookup(name string) (string, bool) {
	return i.index.Lookup(name)
}

// Len reports the number of name keys registered.
func (i Images) Len() int { return i.index.Len() }

// ImageLoader reads the image catalog from a fixed path, caching the parsed
// result for the life of the process.
type ImageLoader struct {
	logger zerolog.Logger
	cache  *cache.File
}

// NewImageLoader wires a loader for the image catalog at path.
func NewImageLoader(path string, logger zerolog.Logger) *ImageLoader {
	l := &ImageLoader{
		logger: logger.With().Str("component", "image_catalog").Logger(),
	}
	l.cache = cache.NewFile(path, l.load, cache.Options{})
	return l
}

// ImageCatalog returns the cached image mapping.
func (l *ImageLoader) ImageCatalog() (Images, error) {
	v, _, err := l.cache.Get()
	if err != nil {
		if os.IsNotExist(err) {
			return Images{}, fmt.Errorf("%w: %v", ErrMissing, err)
		}
		return Images{}, err
	}
	return v.(Images), nil
}

func (l *ImageLoader) load(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	index := names.NewIndex()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	skipped := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 || strings.TrimSpace(line) == "" {
			continue
		}
		at := strings.Index(line, urlMarker)
		if at < 0 {
			skipped++
			continue
		}
		name := strings.TrimRight(line[:at], ", \t")
		url := strings.Trim(strings.TrimSpace(line[at:]), `"`)
		if names.Canonical(name) == "" || url == "" {
			skipped++
			continue
		}
		index.Register(name, url)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	if skipped > 0 {
		l.logger.Warn().Int("lines", skipped).Str("path", path).Msg("image lines without a URL marker skipped")
	}
	l.logger.Debug().Int("keys", index.Len()).Str("path", path).Msg("image catalog loaded")
	return Images{index: index}, nil
}
