package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"albumstore/internal/config"
	"albumstore/internal/storage"
)

// Загрузка архива альбома в объектное хранилище.
// Использование: upload-album <slug> <file-path>
func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Использование: upload-album <slug> <file-path>")
		fmt.Fprintln(os.Stderr, "Пример: upload-album Moon_Goddess ./Moon_Goddess.zip")
		os.Exit(1)
	}

	slug := os.Args[1]
	filePath := os.Args[2]

	cfg := config.LoadConfig()

	store, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("Не удалось открыть файл %s: %v", filePath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		log.Fatalf("Не удалось получить размер файла: %v", err)
	}

	fmt.Println("======================================================")
	fmt.Println("  ЗАГРУЗКА АРХИВА АЛЬБОМА")
	fmt.Println("======================================================")
	fmt.Printf("Slug альбома: %s\n", slug)
	fmt.Printf("Файл:         %s\n", filePath)
	fmt.Printf("Размер файла: %.2f MB\n", float64(info.Size())/(1024*1024))
	fmt.Println()

	objectName, err := store.UploadAlbumArchive(context.Background(), slug, file, info.Size())
	if err != nil {
		log.Fatalf("Загрузка не удалась: %v", err)
	}

	fmt.Println("======================================================")
	fmt.Println("Загрузка выполнена успешно!")
	fmt.Printf("  Путь: %s/%s\n", cfg.MinIO.BucketName, objectName)
	fmt.Println("======================================================")
}
