package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jobsync/skillmatch/internal/embeddings"
)

// BuildOptions controls precomputed store building.
type BuildOptions struct {
	CSVPath   string
	OutDir    string
	Normalize bool
}

// BuildStore encodes the CSV source through enc and writes a precomputed
// store to opts.OutDir. It is the caller's responsibility to apply an atomic
// swap strategy when installing over a live store.
func BuildStore(ctx context.Context, enc embeddings.Provider, opts BuildOptions) (*Catalog, error) {
	if opts.CSVPath == "" {
		return nil, fmt.Errorf("csv path is required")
	}
	if opts.OutDir == "" {
		return nil, fmt.Errorf("out dir is required")
	}

	c, err := LoadCSV(ctx, opts.CSVPath, enc, opts.Normalize)
	if err != nil {
		return nil, err
	}

	c.Manifest.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if c.Manifest.ModelID == "" && enc != nil {
		c.Manifest.ModelID = enc.ModelID()
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create out dir: %w", err)
	}
	if err := Write(opts.OutDir, c.Manifest, c.Courses, c.Vectors); err != nil {
		return nil, err
	}
	return c, nil
}

// AtomicSwap replaces destDir with srcDir by renaming, so readers never
// observe a partially written store.
func AtomicSwap(srcDir, destDir string) error {
	parent := filepath.Dir(destDir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return err
	}
	backup := destDir + ".bak"
	_ = os.RemoveAll(backup)
	if _, err := os.Stat(destDir); err == nil {
		if err := os.Rename(destDir, backup); err != nil {
			return err
		}
	}
	if err := os.Rename(srcDir, destDir); err != nil {
		// rollback best-effort
		if _, stErr := os.Stat(backup); stErr == nil {
			_ = os.Rename(backup, destDir)
		}
		return err
	}
	_ = os.RemoveAll(backup)
	return nil
}
