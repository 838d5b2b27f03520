package bookings

import (
	"time"

	"dog-walking/internal/domain/dogs"
	"dog-walking/internal/domain/owners"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking es un paseo agendado. Solo Cancelled cambia después de crearse.
type Booking struct {
	ID                primitive.ObjectID `bson:"_id" json:"_id"`
	Owner             primitive.ObjectID `bson:"owner" json:"owner"`
	StartTime         time.Time          `bson:"start_time" json:"start_time"`
	DurationInMinutes int                `bson:"duration_in_minutes" json:"duration_in_minutes"`
	Cancelled         bool               `bson:"cancelled" json:"cancelled"`
}

// FullBooking es la vista de lectura: owner embebido + todos sus perros.
// Nunca se escribe.
type FullBooking struct {
	ID                primitive.ObjectID `bson:"_id" json:"_id"`
	Owner             owners.Owner       `bson:"owner" json:"owner"`
	StartTime         time.Time          `bson:"start_time" json:"start_time"`
	DurationInMinutes int                `bson:"duration_in_minutes" json:"duration_in_minutes"`
	Cancelled         bool               `bson:"cancelled" json:"cancelled"`
	Dogs              []dogs.Dog         `bson:"dogs" json:"dogs"`
}
