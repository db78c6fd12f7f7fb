package cmd

import (
	"context"
	stdlog "log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jobsync/skillmatch/internal/logger"
	"github.com/jobsync/skillmatch/internal/recommend"
	"github.com/jobsync/skillmatch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the skill matching and course recommendation HTTP service",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", "", "listen address (default :8000)")
	_ = viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

// serve initializes every shared component up front and serves until
// interrupted. Initialization failures abort startup: the process must not
// serve requests with a partial core.
func serve() {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		stdlog.Fatalf("creating a logger: %s", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("loading config", zap.Error(err))
	}

	log.Info("starting skillmatch", zap.String("version", version))

	extractor, err := buildExtractor(cfg)
	if err != nil {
		log.Fatal("initializing skill extractor", zap.Error(err))
	}

	encoder, err := newEncoder()
	if err != nil {
		log.Fatal("initializing embeddings encoder", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ranker, err := openRanker(ctx, cfg, encoder, log)
	if err != nil {
		log.Fatal("loading course catalog", zap.Error(err))
	}

	svc := recommend.New(extractor, encoder, ranker, log)
	srv := server.New(cfg, svc, log, version)

	if err := srv.ListenAndServe(ctx); err != nil {
		log.Fatal("http server failed", zap.Error(err))
	}
	log.Info("shutdown complete")
}
