package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jobsync/skillmatch/internal/embeddings"
)

// OpenOptions controls catalog loading.
type OpenOptions struct {
	// StoreDir is the precomputed store directory, tried first.
	StoreDir string
	// CSVPath is the raw tabular source, tried when the store is unavailable.
	CSVPath string
	// Normalize applies to embeddings synthesized from the CSV source.
	Normalize bool
}

// Open loads the catalog by evaluating an ordered strategy list once at
// startup: precomputed store, then raw CSV (parsing or synthesizing
// embeddings as needed). Each strategy either returns a catalog or a typed
// failure; Open returns the first success.
func Open(ctx context.Context, opts OpenOptions, enc embeddings.Provider, log *zap.Logger) (*Catalog, error) {
	type strategy struct {
		name string
		load func() (*Catalog, error)
	}

	var strategies []strategy
	if opts.StoreDir != "" {
		strategies = append(strategies, strategy{
			name: "store",
			load: func() (*Catalog, error) { return Load(opts.StoreDir) },
		})
	}
	if opts.CSVPath != "" {
		strategies = append(strategies, strategy{
			name: "csv",
			load: func() (*Catalog, error) { return LoadCSV(ctx, opts.CSVPath, enc, opts.Normalize) },
		})
	}
	if len(strategies) == 0 {
		return nil, fmt.Errorf("%w: no store dir or CSV path configured", ErrNoSource)
	}

	var failures []string
	for _, s := range strategies {
		c, err := s.load()
		if err != nil {
			log.Warn("catalog source unavailable",
				zap.String("source", s.name),
				zap.Error(err),
			)
			failures = append(failures, fmt.Sprintf("%s: %v", s.name, err))
			continue
		}
		log.Info("catalog loaded",
			zap.String("source", s.name),
			zap.Int("courses", c.Len()),
			zap.Int("dim", c.Manifest.Dim),
		)
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoSource, strings.Join(failures, "; "))
}
