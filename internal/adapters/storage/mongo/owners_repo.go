package mongo

import (
	"context"

	"dog-walking/internal/domain/errs"
	"dog-walking/internal/domain/owners"
	"dog-walking/internal/ports/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OwnersRepo struct {
	coll *mongo.Collection
}

func NewOwnersRepo(db *mongo.Database) *OwnersRepo {
	return &OwnersRepo{coll: db.Collection(OwnerCollection)}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (storage.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, o)
	if err != nil {
		return storage.InsertAck{}, errs.Db("insert owner", err)
	}
	return insertAck(res), nil
}

func insertAck(res *mongo.InsertOneResult) storage.InsertAck {
	id, _ := res.InsertedID.(primitive.ObjectID)
	return storage.InsertAck{InsertedID: id}
}
