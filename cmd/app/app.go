package app

import (
	"log"

	"albumstore/internal/config"
	"albumstore/internal/database"
	"albumstore/internal/repository"
	"albumstore/internal/service"
	"albumstore/internal/storage"
)

// App wires the external clients and the dependency graph. Clients are
// constructed here and passed down, never held in package-level singletons.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, storage.Storage) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg)

	return db, repo, services, minioClient
}
