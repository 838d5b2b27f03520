package bookings

import (
	"time"

	"dog-walking/internal/domain/errs"
	"dog-walking/internal/platform/validate"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateBookingRequest es el cuerpo de POST /booking.
type CreateBookingRequest struct {
	Owner             string `json:"owner"`
	StartTime         string `json:"start_time"` // RFC3339
	DurationInMinutes int    `json:"duration_in_minutes"`
}

// ToBooking valida solo las referencias (owner, start_time).
// start_time se normaliza a UTC con precisión de milisegundos (la de BSON datetime).
func (r CreateBookingRequest) ToBooking() (Booking, error) {
	owner, err := validate.ObjectID("owner", r.Owner)
	if err != nil {
		return Booking{}, err
	}

	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return Booking{}, errs.Validation("start_time", err)
	}

	return Booking{
		ID:                primitive.NewObjectID(),
		Owner:             owner,
		StartTime:         start.UTC().Truncate(time.Millisecond),
		DurationInMinutes: r.DurationInMinutes,
		Cancelled:         false,
	}, nil
}
