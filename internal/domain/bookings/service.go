package bookings

import (
	"context"
	"time"

	"dog-walking/internal/domain/errs"
	"dog-walking/internal/ports/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (storage.InsertAck, error) {
	b, err := req.ToBooking()
	if err != nil {
		return storage.InsertAck{}, err
	}
	return s.repo.Create(ctx, b)
}

// Cancel es idempotente.
func (s *Service) Cancel(ctx context.Context, rawID string) (storage.UpdateAck, error) {
	id, err := parseID(rawID)
	if err != nil {
		return storage.UpdateAck{}, err
	}
	return s.repo.Cancel(ctx, id)
}

// ListUpcoming evalúa "ahora" una sola vez por llamada.
func (s *Service) ListUpcoming(ctx context.Context) ([]FullBooking, error) {
	items, err := s.repo.ListUpcoming(ctx, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []FullBooking{}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, rawID string) (FullBooking, error) {
	id, err := parseID(rawID)
	if err != nil {
		return FullBooking{}, err
	}
	return s.repo.GetFull(ctx, id)
}

func parseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, errs.NotFound("Invalid ID")
	}
	return id, nil
}
