package main

import (
	"fmt"
	"os"

	"clothly/internal/models"
	"clothly/internal/repositories"
	"clothly/internal/services"
	"clothly/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	seedFile    string
	seedReplace bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import clothing items from a YAML file",
	Long: `Validates every item of the file and writes them to the configured
collection. With --replace the collection is emptied first. When RABBITMQ_URL
is set a catalog.imported event is published afterwards.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML file with an items list")
	seedCmd.Flags().BoolVar(&seedReplace, "replace", false, "remove existing items before importing")
	_ = seedCmd.MarkFlagRequired("file")
}

// seedFileContents is the layout of a seed file.
type seedFileContents struct {
	Items []models.ClothingItem `yaml:"items"`
}

// readSeedFile parses the items of a seed file.
func readSeedFile(path string) ([]models.ClothingItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var contents seedFileContents
	if err := yaml.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	if len(contents.Items) == 0 {
		return nil, fmt.Errorf("seed file %s has no items", path)
	}
	return contents.Items, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	items, err := readSeedFile(seedFile)
	if err != nil {
		return err
	}

	store, err := repositories.OpenStore(cmd.Context(), cfg.Store, logger)
	if err != nil {
		logger.WithError(err).Error("database connection error")
		return err
	}
	defer store.Close(cmd.Context())

	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Logger: logger})
		if err != nil {
			logger.WithError(err).Warn("Publishing disabled")
		} else {
			defer mq.Close()
			events = mq
		}
	}

	service := services.NewClothingService(store, cfg.Store.Collection, events, logger)
	n, err := service.Import(cmd.Context(), items, seedReplace)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items into %s\n", n, cfg.Store.Collection)
	return nil
}
