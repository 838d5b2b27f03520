package owners

import (
	"context"

	"dog-walking/internal/ports/storage"
)

type Repository interface {
	Create(ctx context.Context, o Owner) (storage.InsertAck, error)
}
