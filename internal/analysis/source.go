package analysis

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cadence/internal/services"
)

// Source fetches the analysis for an audio source identifier.
type Source interface {
	Fetch(ctx context.Context, sourceID string) (Result, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, sourceID string) (Result, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context, sourceID string) (Result, error) {
	return f(ctx, sourceID)
}

// FileSource reads <Dir>/<sourceID>.json. A sourceID that already names a JSON
// file (it ends in .json or contains a path separator) is opened directly.
type FileSource struct {
	Dir string
}

// NewFileSource returns a FileSource rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

// Fetch loads and decodes the analysis document for sourceID.
func (s *FileSource) Fetch(ctx context.Context, sourceID string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	path, err := s.resolve(sourceID)
	if err != nil {
		return Result{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, services.Wrap(services.ErrNotFound, "analysis", "fetch", "no analysis for "+sourceID, err)
		}
		return Result{}, services.Wrap(services.ErrUnavailable, "analysis", "fetch", "open analysis document", err)
	}
	defer file.Close()
	return Decode(file)
}

func (s *FileSource) resolve(sourceID string) (string, error) {
	id := strings.TrimSpace(sourceID)
	if id == "" {
		return "", services.Wrap(services.ErrValidation, "analysis", "fetch", "source id is empty", nil)
	}
	if strings.HasSuffix(strings.ToLower(id), ".json") || strings.ContainsRune(id, filepath.Separator) || strings.ContainsRune(id, '/') {
		return filepath.Clean(id), nil
	}
	if s == nil || strings.TrimSpace(s.Dir) == "" {
		return "", services.Wrap(services.ErrConfiguration, "analysis", "fetch", "analysis directory is not configured", nil)
	}
	return filepath.Join(s.Dir, id+".json"), nil
}
