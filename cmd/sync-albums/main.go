package main

import (
	"context"
	"fmt"
	"log"

	"albumstore/internal/config"
	"albumstore/internal/database"
	"albumstore/internal/repository"
	"albumstore/internal/service"
)

// Синхронизация альбомов из файловой системы в БД.
// Читает {ALBUMS_DIR}/*/album.txt и создает/обновляет продукты.
func main() {
	cfg := config.LoadConfig()

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer db.CloseDB()

	repo := repository.NewRepository(db.DB)
	syncService := service.NewSyncService(repo.Creator, repo.Product, repo.File)

	fmt.Println("======================================================")
	fmt.Println("  СИНХРОНИЗАЦИЯ АЛЬБОМОВ С ПРОДУКТАМИ")
	fmt.Println("======================================================")
	fmt.Println()

	stats, err := syncService.SyncAlbums(context.Background(), cfg.AlbumsDir)
	if err != nil {
		log.Fatalf("Фатальная ошибка синхронизации: %v", err)
	}

	fmt.Println()
	fmt.Println("======================================================")
	fmt.Printf("Синхронизация завершена: %d синхронизировано, %d пропущено, %d с ошибками\n",
		stats.Synced, stats.Skipped, stats.Failed)
	fmt.Println("======================================================")
}
