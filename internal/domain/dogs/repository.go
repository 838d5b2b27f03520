package dogs

import (
	"context"

	"dog-walking/internal/ports/storage"
)

type Repository interface {
	Create(ctx context.Context, d Dog) (storage.InsertAck, error)
}
