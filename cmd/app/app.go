package app

import (
	"context"

	"go.uber.org/zap"

	"imagestorebot/internal/config"
	"imagestorebot/internal/database"
	"imagestorebot/internal/repository"
	"imagestorebot/internal/service"
	"imagestorebot/internal/storage"
)

// App connects the ledger and object storage and builds the services on top.
// files is where approved photos are downloaded from for archiving.
func App(ctx context.Context, cfg *config.Config, log *zap.Logger, files service.FileSource) (*database.DB, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// connection MinIO, archiving stays off without it
	var archive storage.Storage
	if cfg.MinIO.Enabled {
		minioClient, err := storage.NewMinIOClient(ctx, cfg)
		if err != nil {
			log.Fatal("failed to initialize MinIO", zap.Error(err))
		}
		archive = minioClient
		log.Info("archiving approved photos", zap.String("bucket", cfg.MinIO.BucketName))
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, archive, files, log)

	return db, services
}
