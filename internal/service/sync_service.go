package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"albumstore/internal/content"
	"albumstore/internal/models"
	"albumstore/internal/repository"
)

// ErrNoFrontmatter - album.txt без блока front matter; каталог пропускается с предупреждением
var ErrNoFrontmatter = errors.New("front matter не найден")

type SyncStats struct {
	Synced  int
	Skipped int
	Failed  int
}

type SyncService interface {
	SyncAlbums(ctx context.Context, albumsDir string) (*SyncStats, error)
}

type syncService struct {
	creatorRepo repository.CreatorRepository
	productRepo repository.ProductRepository
	fileRepo    repository.FileRepository
}

func NewSyncService(creatorRepo repository.CreatorRepository, productRepo repository.ProductRepository, fileRepo repository.FileRepository) SyncService {
	return &syncService{
		creatorRepo: creatorRepo,
		productRepo: productRepo,
		fileRepo:    fileRepo,
	}
}

// SyncAlbums walks the immediate subdirectories of albumsDir and upserts one
// product per slug. Per-slug failures are counted and never abort the run.
func (s *syncService) SyncAlbums(ctx context.Context, albumsDir string) (*SyncStats, error) {
	entries, err := os.ReadDir(albumsDir)
	if err != nil {
		return nil, fmt.Errorf("ошибка при чтении каталога альбомов: %w", err)
	}

	stats := &SyncStats{}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		slug := entry.Name()

		err := s.syncAlbum(ctx, albumsDir, slug)
		switch {
		case errors.Is(err, ErrNoFrontmatter):
			log.Printf("Пропускаем %s: front matter не найден", slug)
			stats.Skipped++
		case err != nil:
			log.Printf("Не удалось синхронизировать %s: %v", slug, err)
			stats.Failed++
		default:
			stats.Synced++
		}
	}

	return stats, nil
}

func (s *syncService) syncAlbum(ctx context.Context, albumsDir, slug string) error {
	raw, err := os.ReadFile(filepath.Join(albumsDir, slug, "album.txt"))
	if err != nil {
		return fmt.Errorf("ошибка при чтении album.txt: %w", err)
	}

	frontmatter, ok := content.ExtractFrontmatter(string(raw))
	if !ok {
		return ErrNoFrontmatter
	}

	title := content.GetField(frontmatter, "title", "Untitled")
	artist := content.GetField(frontmatter, "artist", "Unknown Artist")
	priceCents := content.GetIntField(frontmatter, "price_cents", 0)
	date := content.GetField(frontmatter, "date", "")
	body := content.ExtractBody(string(raw))

	log.Printf("Обрабатываем %s: %s / %s, $%.2f", slug, title, artist, float64(priceCents)/100)

	creator, err := s.creatorRepo.GetOrCreate(ctx, artist)
	if err != nil {
		return err
	}

	product := &models.Product{
		Slug:        slug,
		Title:       title,
		Type:        "album",
		Description: body,
		PriceCents:  priceCents,
		CreatorID:   creator.CreatorID,
		ReleaseDate: date,
	}

	if err := s.productRepo.Upsert(ctx, product); err != nil {
		return err
	}

	// FLAC-архив лежит по соглашению {slug}/release.zip
	file := &models.ProductFile{
		ProductID: product.ProductID,
		Format:    "flac",
		FileURL:   fmt.Sprintf("%s/release.zip", slug),
	}

	if err := s.fileRepo.Upsert(ctx, file); err != nil {
		return err
	}

	return nil
}
