package FaqHandler

import (
	FaqRepository "github.com/clbasaran/backend-ozmevsim/repositories/faq"
)

type Handler struct {
	FaqRepository *FaqRepository.Repository
}

func NewHandler(r *FaqRepository.Repository) *Handler {
	return &Handler{
		FaqRepository: r,
	}
}
