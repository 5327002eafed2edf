package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Kilat-Pet-Delivery/service-pets/internal/application"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/config"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/platform/logger"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/server"
)

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert pets from a YAML file",
		Long: `Reads a YAML list of pets and inserts them in one all-or-nothing batch.

  - name: Fido
    species: Dog
    breed: Lab
    gender: M
    image: fido.png
    description: friendly
    price: 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			return runSeed(cmd.Context(), path, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("file", "f", "pets.yaml", "YAML file holding the pets to insert")
	return cmd
}

func runSeed(ctx context.Context, path string, out io.Writer) error {
	reqs, err := loadSeedFile(path)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.NewNamed(cfg.AppEnv, server.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	st, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	producer := newEventProducer(cfg.KafkaConfig, log)
	defer func() { _ = producer.Close() }()

	svc := application.NewPetService(st.repo, producer, cfg.KafkaConfig.Topic, log)
	return seedPets(ctx, svc, reqs, out, log)
}

func seedPets(ctx context.Context, svc *application.PetService, reqs []application.PetRequest, out io.Writer, log *zap.Logger) error {
	created, err := svc.CreatePets(ctx, reqs)
	if err != nil {
		return err
	}
	for _, p := range created {
		fmt.Fprintf(out, "%d\t%s\n", p.ID, p.Name)
	}
	log.Info("seed completed", zap.Int("count", len(created)))
	return nil
}

func loadSeedFile(path string) ([]application.PetRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var reqs []application.PetRequest
	if err := yaml.Unmarshal(raw, &reqs); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return reqs, nil
}
