package bookings

import (
	"context"
	"time"

	"dog-walking/internal/ports/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	Create(ctx context.Context, b Booking) (storage.InsertAck, error)

	// Cancel marca cancelled=true. Sin match no es error: el ack trae 0.
	Cancel(ctx context.Context, id primitive.ObjectID) (storage.UpdateAck, error)

	// ListUpcoming: no canceladas con start_time >= now, con owner y perros.
	// Una reserva cuyo owner no existe no aparece. Sin orden garantizado.
	ListUpcoming(ctx context.Context, now time.Time) ([]FullBooking, error)

	// GetFull no filtra por cancelled ni por fecha.
	GetFull(ctx context.Context, id primitive.ObjectID) (FullBooking, error)
}
