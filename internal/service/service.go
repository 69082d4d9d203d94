package service

import (
	"albumstore/internal/config"
	"albumstore/internal/repository"
)

type Service struct {
	Auth AuthService
	Sync SyncService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Auth: NewAuthService(rep.User, cfg),
		Sync: NewSyncService(rep.Creator, rep.Product, rep.File),
	}
}
