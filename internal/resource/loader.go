// Package resource reads the description and template and writes the generated file.
package resource

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Loader struct {
	fs     afero.Fs
	client *resty.Client
	logger *zap.SugaredLogger
}

// NewLoader reads and writes files through fs; http(s) locations go through an HTTP client with given timeout.
func NewLoader(fs afero.Fs, timeout time.Duration, logger *zap.SugaredLogger) *Loader {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Loader{
		fs:     fs,
		client: newClient(timeout),
		logger: logger,
	}
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Load returns the full text under location: a path, a file:// URL or an http(s):// URL.
func (loader *Loader) Load(ctx context.Context, location string) (string, error) {
	if isRemote(location) {
		loader.logger.Debugw("downloading", "url", location)
		content, err := download(ctx, loader.client, location)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}

	path := location
	if strings.HasPrefix(location, "file://") {
		parsed, err := url.Parse(location)
		if err != nil {
			return "", errors.Wrapf(err, "invalid file URL %s", location)
		}
		path = parsed.Path
	}

	loader.logger.Debugw("reading", "path", path)
	content, err := afero.ReadFile(loader.fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}

	return string(content), nil
}

// Exists reports whether a local file is present.
func (loader *Loader) Exists(path string) (bool, error) {
	return afero.Exists(loader.fs, path)
}

// Save writes content to path, creating parent directories as needed.
func (loader *Loader) Save(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := loader.fs.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}

	if err := afero.WriteFile(loader.fs, path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	loader.logger.Debugw("wrote", "path", path, "bytes", len(content))
	return nil
}
