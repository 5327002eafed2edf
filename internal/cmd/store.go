package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-pets/internal/config"
	petDomain "github.com/Kilat-Pet-Delivery/service-pets/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/platform/database"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/platform/health"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/repository"
)

// store is the pet repository selected by PET_STORE_DRIVER together with its
// readiness check and release hook.
type store struct {
	repo  petDomain.PetRepository
	ready health.Pinger
	close func()
}

func openStore(cfg *config.ServiceConfig, log *zap.Logger) (*store, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Warn("using in-memory pet store, records are lost on exit")
		return &store{repo: repository.NewMemoryPetRepository(), close: func() {}}, nil
	}

	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&repository.PetModel{}); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to run auto-migration: %w", err)
	}
	log.Info("database schema ready")

	return &store{
		repo:  repository.NewGormPetRepository(db),
		ready: health.GormPinger(db),
		close: func() {
			if err := database.Close(db); err != nil {
				log.Error("failed to close database", zap.Error(err))
			}
		},
	}, nil
}
