package ImageHandler

import (
	ImageRepository "github.com/clbasaran/backend-ozmevsim/repositories/image"
	StorageRepository "github.com/clbasaran/backend-ozmevsim/repositories/storage"
)

type Handler struct {
	ImageRepository   *ImageRepository.Repository
	StorageRepository *StorageRepository.Repository
}

func NewHandler(i *ImageRepository.Repository, s *StorageRepository.Repository) *Handler {
	return &Handler{
		ImageRepository:   i,
		StorageRepository: s,
	}
}
