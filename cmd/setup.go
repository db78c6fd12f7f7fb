package cmd

import (
	"context"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jobsync/skillmatch/internal/catalog"
	"github.com/jobsync/skillmatch/internal/config"
	"github.com/jobsync/skillmatch/internal/embeddings"
	"github.com/jobsync/skillmatch/internal/nlp"
	"github.com/jobsync/skillmatch/internal/skills"
	"github.com/jobsync/skillmatch/internal/vocab"
)

// loadConfig resolves the effective configuration from viper.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// buildExtractor loads the vocabulary and annotator and wires the extractor.
// Any failure here is an initialization error; callers must not proceed.
func buildExtractor(cfg *config.Config) (*skills.Extractor, error) {
	var (
		v   *vocab.Vocabulary
		err error
	)
	if cfg.Vocabulary != "" {
		v, err = vocab.LoadFile(cfg.Vocabulary)
	} else {
		v, err = vocab.Default()
	}
	if err != nil {
		return nil, err
	}

	ann, err := nlp.NewAnnotator()
	if err != nil {
		return nil, err
	}

	ex := skills.NewExtractor(v, ann)
	if cfg.FuzzyThreshold > 0 {
		ex.FuzzyThreshold = cfg.FuzzyThreshold
	}
	return ex, nil
}

// newEncoder resolves embeddings credentials and constructs the encoder.
func newEncoder() (embeddings.Provider, error) {
	embCfg, err := embeddings.LoadConfig()
	if err != nil {
		return nil, err
	}
	return embeddings.NewFromConfig(embCfg)
}

// openRanker loads the catalog through the configured fallback chain and
// wraps it in a ranker.
func openRanker(ctx context.Context, cfg *config.Config, enc embeddings.Provider, log *zap.Logger) (*catalog.Ranker, error) {
	c, err := catalog.Open(ctx, catalog.OpenOptions{
		StoreDir:  cfg.Catalog.StoreDir,
		CSVPath:   cfg.Catalog.CSVPath,
		Normalize: cfg.Catalog.Normalize,
	}, enc, log)
	if err != nil {
		return nil, err
	}
	return catalog.NewRanker(c), nil
}
