package memory

import (
	"context"
	"errors"
	"time"

	"dog-walking/internal/domain/bookings"
	"dog-walking/internal/domain/dogs"
	"dog-walking/internal/domain/errs"
	"dog-walking/internal/ports/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bookingRepo struct {
	s *Store
}

func NewBookingRepo(s *Store) bookings.Repository {
	return &bookingRepo{s: s}
}

func (r *bookingRepo) Create(ctx context.Context, b bookings.Booking) (storage.InsertAck, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if b.ID.IsZero() {
		return storage.InsertAck{}, errs.Db("insert booking", errors.New("booking id required"))
	}
	if _, exists := r.s.bookingByID[b.ID]; exists {
		return storage.InsertAck{}, errs.Db("insert booking", errors.New("duplicate key _id"))
	}

	r.s.bookingByID[b.ID] = len(r.s.bookings)
	r.s.bookings = append(r.s.bookings, b)
	return storage.InsertAck{InsertedID: b.ID}, nil
}

func (r *bookingRepo) Cancel(ctx context.Context, id primitive.ObjectID) (storage.UpdateAck, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, ok := r.s.bookingByID[id]
	if !ok {
		return storage.UpdateAck{}, nil
	}

	ack := storage.UpdateAck{MatchedCount: 1}
	if !r.s.bookings[i].Cancelled {
		r.s.bookings[i].Cancelled = true
		ack.ModifiedCount = 1
	}
	return ack, nil
}

func (r *bookingRepo) ListUpcoming(ctx context.Context, now time.Time) ([]bookings.FullBooking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]bookings.FullBooking, 0)
	for _, b := range r.s.bookings {
		if b.Cancelled || b.StartTime.Before(now) {
			continue
		}
		fb, ok := r.join(b)
		if !ok {
			continue
		}
		out = append(out, fb)
	}
	return out, nil
}

func (r *bookingRepo) GetFull(ctx context.Context, id primitive.ObjectID) (bookings.FullBooking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.bookingByID[id]
	if !ok {
		return bookings.FullBooking{}, errs.NotFound("Booking not found")
	}
	fb, ok := r.join(r.s.bookings[i])
	if !ok {
		// mismo comportamiento que el $unwind en Mongo: sin owner no hay fila
		return bookings.FullBooking{}, errs.NotFound("Booking not found")
	}
	return fb, nil
}

// join replica booking -> owner (exactamente uno) -> dogs (cero o más).
// Caller debe tener el lock.
func (r *bookingRepo) join(b bookings.Booking) (bookings.FullBooking, bool) {
	oi, ok := r.s.ownerByID[b.Owner]
	if !ok {
		return bookings.FullBooking{}, false
	}
	owner := r.s.owners[oi]

	ds := make([]dogs.Dog, 0)
	for _, d := range r.s.dogs {
		if d.Owner == owner.ID {
			ds = append(ds, d)
		}
	}

	return bookings.FullBooking{
		ID:                b.ID,
		Owner:             owner,
		StartTime:         b.StartTime,
		DurationInMinutes: b.DurationInMinutes,
		Cancelled:         b.Cancelled,
		Dogs:              ds,
	}, true
}
