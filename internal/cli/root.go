package cli

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"projtrack/internal/activity"
	"projtrack/internal/config"
	"projtrack/internal/storage"
	"projtrack/pkg/logger"
)

var (
	version = "dev"

	cfgPath  string
	cfg      *config.Config
	log      *zap.Logger
	act      *activity.Logger
	projects *storage.ProjectRepository
	tasks    *storage.TaskRepository
)

var rootCmd = &cobra.Command{
	Use:          "tracker",
	Short:        "Local project and task tracker",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		log, err = logger.New(cfg.Logging.Level)
		if err != nil {
			return err
		}

		act, err = activity.New(cfg.Logging.ActivityLog)
		if err != nil {
			return err
		}

		db, err := storage.Open(cfg.Storage.Path, log)
		if err != nil {
			return err
		}
		projects = storage.NewProjectRepository(db, log)
		tasks = storage.NewTaskRepository(db, log)

		if cfg.Metrics.Addr != "" {
			go serveMetrics(cfg.Metrics.Addr)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if act != nil {
			act.Sync()
		}
		if log != nil {
			log.Sync()
		}
	},
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("Metrics listener starting", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("Metrics listener failed", zap.Error(err))
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "tracker.yaml", "path to config file")
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(taskCmd)
}
