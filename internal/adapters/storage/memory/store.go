package memory

import (
	"context"
	"sync"

	"dog-walking/internal/domain/bookings"
	"dog-walking/internal/domain/dogs"
	"dog-walking/internal/domain/owners"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store guarda las tres colecciones en memoria bajo un solo lock.
// Los slices conservan orden de inserción (como una colección sin índice);
// el map de bookings solo indexa posiciones para cancelar y buscar.
type Store struct {
	mu sync.RWMutex

	owners    []owners.Owner
	ownerByID map[primitive.ObjectID]int

	dogs []dogs.Dog

	bookings    []bookings.Booking
	bookingByID map[primitive.ObjectID]int
}

func NewStore() *Store {
	return &Store{
		ownerByID:   make(map[primitive.ObjectID]int),
		bookingByID: make(map[primitive.ObjectID]int),
	}
}

// Ping siempre responde; existe para que /readyz trate igual a ambos stores.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}
