package ContactHandler

import (
	ContactRepository "github.com/clbasaran/backend-ozmevsim/repositories/contact"
)

type Handler struct {
	ContactRepository *ContactRepository.Repository
}

func NewHandler(r *ContactRepository.Repository) *Handler {
	return &Handler{
		ContactRepository: r,
	}
}
