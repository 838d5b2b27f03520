package memory

import (
	"context"
	"errors"

	"dog-walking/internal/domain/errs"
	"dog-walking/internal/domain/owners"
	"dog-walking/internal/ports/storage"
)

type ownerRepo struct {
	s *Store
}

func NewOwnerRepo(s *Store) owners.Repository {
	return &ownerRepo{s: s}
}

func (r *ownerRepo) Create(ctx context.Context, o owners.Owner) (storage.InsertAck, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if o.ID.IsZero() {
		return storage.InsertAck{}, errs.Db("insert owner", errors.New("owner id required"))
	}
	if _, exists := r.s.ownerByID[o.ID]; exists {
		return storage.InsertAck{}, errs.Db("insert owner", errors.New("duplicate key _id"))
	}

	r.s.ownerByID[o.ID] = len(r.s.owners)
	r.s.owners = append(r.s.owners, o)
	return storage.InsertAck{InsertedID: o.ID}, nil
}
