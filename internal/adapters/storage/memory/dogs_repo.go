package memory

import (
	"context"
	"errors"

	"dog-walking/internal/domain/dogs"
	"dog-walking/internal/domain/errs"
	"dog-walking/internal/ports/storage"
)

type dogRepo struct {
	s *Store
}

func NewDogRepo(s *Store) dogs.Repository {
	return &dogRepo{s: s}
}

func (r *dogRepo) Create(ctx context.Context, d dogs.Dog) (storage.InsertAck, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if d.ID.IsZero() {
		return storage.InsertAck{}, errs.Db("insert dog", errors.New("dog id required"))
	}
	for _, existing := range r.s.dogs {
		if existing.ID == d.ID {
			return storage.InsertAck{}, errs.Db("insert dog", errors.New("duplicate key _id"))
		}
	}

	r.s.dogs = append(r.s.dogs, d)
	return storage.InsertAck{InsertedID: d.ID}, nil
}
