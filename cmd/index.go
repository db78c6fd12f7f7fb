package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/jobsync/skillmatch/internal/catalog"
	"github.com/jobsync/skillmatch/internal/config"
)

var (
	flagIndexCSV         string
	flagIndexOut         string
	flagIndexNoNormalize bool
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the precomputed course catalog store from a CSV source",
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&flagIndexCSV, "csv", "", "Catalog CSV source (default from config)")
	indexCmd.Flags().StringVar(&flagIndexOut, "out", "", "Store output directory (default from config)")
	indexCmd.Flags().BoolVar(&flagIndexNoNormalize, "no-normalize", false, "Do not normalize synthesized embeddings")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	csvPath := flagIndexCSV
	if csvPath == "" {
		csvPath = cfg.Catalog.CSVPath
	}
	if csvPath == "" {
		return fmt.Errorf("no CSV source configured (set --csv or catalog.csv-path)")
	}
	outDir := flagIndexOut
	if outDir == "" {
		outDir = cfg.Catalog.StoreDir
	}
	normalize := cfg.Catalog.Normalize && !flagIndexNoNormalize

	enc, err := newEncoder()
	if err != nil {
		return err
	}

	_, release, err := acquireStoreLock(30 * time.Second)
	if err != nil {
		return err
	}
	defer release()

	baseDir, err := config.SkillmatchDir()
	if err != nil {
		return err
	}
	tmpBase := filepath.Join(baseDir, "tmp")
	if err := os.MkdirAll(tmpBase, 0o755); err != nil {
		return fmt.Errorf("cannot create temp dir %s: %w", tmpBase, err)
	}
	tmpDir, err := os.MkdirTemp(tmpBase, "catalog-store-*")
	if err != nil {
		return fmt.Errorf("cannot create temp store dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	printInfo("", fmt.Sprintf("building catalog store using %s", enc.ModelID()))
	c, err := catalog.BuildStore(ctx, enc, catalog.BuildOptions{
		CSVPath:   csvPath,
		OutDir:    tmpDir,
		Normalize: normalize,
	})
	if err != nil {
		return fmt.Errorf("store build failed: %w", err)
	}

	if err := catalog.AtomicSwap(tmpDir, outDir); err != nil {
		return fmt.Errorf("cannot install store: %w", err)
	}
	printOK("", fmt.Sprintf("catalog store written: %s (%d courses, dim %d)", outDir, c.Len(), c.Manifest.Dim))
	return nil
}

// acquireStoreLock obtains the global store-build lock for the current user.
func acquireStoreLock(timeout time.Duration) (*flock.Flock, func(), error) {
	dir, err := config.SkillmatchDir()
	if err != nil {
		return nil, func() {}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	lockPath := filepath.Join(dir, "store.lock")

	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, func() {}, fmt.Errorf("cannot acquire store lock: %w", err)
		}
		if locked {
			return l, func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, func() {}, fmt.Errorf("another store build is in progress (lock: %s)", lockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
