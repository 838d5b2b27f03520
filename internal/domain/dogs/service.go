package dogs

import (
	"context"

	"dog-walking/internal/ports/storage"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create convierte y persiste. Si la conversión falla no se escribe nada.
func (s *Service) Create(ctx context.Context, req CreateDogRequest) (storage.InsertAck, error) {
	d, err := req.ToDog()
	if err != nil {
		return storage.InsertAck{}, err
	}
	return s.repo.Create(ctx, d)
}
