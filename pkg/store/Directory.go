package store

import (
	"fmt"
	"github.com/kre8/kre8/internal/helpers"
	"github.com/kre8/kre8/pkg/logger"
	"go.uber.org/zap"
	"os"
	"path/filepath"
)

func NewDirectory(base string) *Directory {
	return &Directory{
		base: base,
	}
}

// EnsureDirectory creates base/name only when it is missing and returns its path.
func (d *Directory) EnsureDirectory(name string) (string, error) {
	path := filepath.Join(d.base, name)

	info, err := os.Stat(path)

	if err == nil {
		if !info.IsDir() {
			return "", newError("ensure", path, fmt.Errorf("exists and is not a directory"), ErrIO)
		}

		return path, nil
	}

	if !os.IsNotExist(err) {
		return "", newError("ensure", path, err, ErrIO)
	}

	err = os.MkdirAll(path, 0750)

	if err != nil {
		return "", newError("ensure", path, err, ErrIO)
	}

	err = helpers.ChownToRealUser(path)

	if err != nil {
		return "", newError("ensure", path, fmt.Errorf("failed to change owner: %w", err), ErrIO)
	}

	logger.Log.Info("directory created", zap.String("path", path))

	return path, nil
}

func (d *Directory) Base() string {
	return d.base
}
