package owners

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

func (s *Service) Create(ctx context.Context, req CreateOwnerRequest) (storage.InsertAck, error) {
	o, err := req.ToOwner()
	if err != nil {
		return storage.InsertAck{}, err
	}
	return s.repo.Create(ctx, o)
}
