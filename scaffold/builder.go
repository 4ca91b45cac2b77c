package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erispulse/epscaffold/project"
)

var (
	// ErrDirectoryExists is returned when the target project directory
	// already exists and is non-empty.
	ErrDirectoryExists = errors.New("directory already exists")
	// ErrFileExists is returned when a target file appears after the
	// initial directory check, e.g. created concurrently with the run.
	ErrFileExists = errors.New("file already exists")
)

// Build materializes the project tree for info under outputDir and returns
// the written paths in generation order. It is fail-fast and one-shot: the
// first error aborts the run and any partial directory is left for the
// caller to clean up.
func Build(outputDir string, info project.Info) ([]string, error) {
	manifest, err := Manifest(info.Type)
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Join(outputDir, info.Name)
	if entries, err := os.ReadDir(baseDir); err == nil && len(entries) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryExists, baseDir)
	}

	pkgDir := filepath.Join(baseDir, info.PackageName())
	if err := os.MkdirAll(pkgDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", pkgDir, err)
	}

	var written []string
	for _, spec := range manifest {
		target := filepath.Join(baseDir, spec.Path)
		if spec.InPackage {
			target = filepath.Join(pkgDir, spec.Path)
		}

		// The empty check above covers everything present at the start of
		// the run; this catches files appearing under baseDir between that
		// check and the write.
		if _, err := os.Stat(target); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrFileExists, target)
		}

		content, err := Render(spec.Template, info)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", target, err)
		}
		written = append(written, target)
	}

	return written, nil
}
