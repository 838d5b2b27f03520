package mongo

import (
	"context"

	"dog-walking/internal/domain/dogs"
	"dog-walking/internal/domain/errs"
	"dog-walking/internal/ports/storage"

	"go.mongodb.org/mongo-driver/mongo"
)

type DogsRepo struct {
	coll *mongo.Collection
}

func NewDogsRepo(db *mongo.Database) *DogsRepo {
	return &DogsRepo{coll: db.Collection(DogCollection)}
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) (storage.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		return storage.InsertAck{}, errs.Db("insert dog", err)
	}
	return insertAck(res), nil
}
