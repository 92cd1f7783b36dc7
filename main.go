package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clothly/internal/app"
	"clothly/internal/config"
	"clothly/internal/logging"
	"clothly/internal/repositories"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:           "clothly",
	Short:         "Clothing storefront backend",
	Long:          `Serves the clothing catalog and storefront content over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Connect to the database and serve the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files to load before reading the environment")
	rootCmd.AddCommand(serveCmd, seedCmd, eventsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the dotenv files and the environment and builds the logger.
func loadConfig() (*config.Config, *logrus.Logger, error) {
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(config.NewViper())
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr), nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	return app.Boot(cmd.Context(), cfg, logger, repositories.OpenStore, app.ListenFiber)
}
