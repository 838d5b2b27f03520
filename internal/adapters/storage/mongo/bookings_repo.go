package mongo

import (
	"context"
	"time"

	"dog-walking/internal/domain/bookings"
	"dog-walking/internal/domain/dogs"
	"dog-walking/internal/domain/errs"
	"dog-walking/internal/platform/logger"
	"dog-walking/internal/ports/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingsRepo struct {
	coll *mongo.Collection
	log  logger.Logger
}

func NewBookingsRepo(db *mongo.Database, log logger.Logger) *BookingsRepo {
	return &BookingsRepo{
		coll: db.Collection(BookingCollection),
		log:  log,
	}
}

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) (storage.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return storage.InsertAck{}, errs.Db("insert booking", err)
	}
	return insertAck(res), nil
}

func (r *BookingsRepo) Cancel(ctx context.Context, id primitive.ObjectID) (storage.UpdateAck, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"cancelled": true}},
	)
	if err != nil {
		return storage.UpdateAck{}, errs.Db("cancel booking", err)
	}

	ack := storage.UpdateAck{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if uid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		ack.UpsertedID = &uid
	}
	return ack, nil
}

// ListUpcoming: documentos que no decodifican se loguean y se saltan;
// el resto de la lista se devuelve igual.
func (r *BookingsRepo) ListUpcoming(ctx context.Context, now time.Time) ([]bookings.FullBooking, error) {
	cur, err := r.coll.Aggregate(ctx, fullBookingPipeline(bson.M{
		"cancelled":  false,
		"start_time": bson.M{"$gte": now},
	}))
	if err != nil {
		return nil, errs.Db("aggregate bookings", err)
	}
	defer cur.Close(ctx)

	out := make([]bookings.FullBooking, 0)
	for cur.Next(ctx) {
		var fb bookings.FullBooking
		if err := cur.Decode(&fb); err != nil {
			r.log.Warn("skipping undecodable booking", map[string]any{
				"error": err,
				"_id":   cur.Current.Lookup("_id").String(),
			})
			continue
		}
		out = append(out, normalize(fb))
	}
	if err := cur.Err(); err != nil {
		return nil, errs.Db("aggregate bookings", err)
	}
	return out, nil
}

func (r *BookingsRepo) GetFull(ctx context.Context, id primitive.ObjectID) (bookings.FullBooking, error) {
	cur, err := r.coll.Aggregate(ctx, fullBookingPipeline(bson.M{"_id": id}))
	if err != nil {
		return bookings.FullBooking{}, errs.Db("aggregate booking", err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return bookings.FullBooking{}, errs.Db("aggregate booking", err)
		}
		return bookings.FullBooking{}, errs.NotFound("Booking not found")
	}

	var fb bookings.FullBooking
	if err := cur.Decode(&fb); err != nil {
		return bookings.FullBooking{}, errs.Db("decode booking", err)
	}
	return normalize(fb), nil
}

// fullBookingPipeline: booking -> owner (el $unwind descarta reservas sin owner)
// -> dogs del owner.
func fullBookingPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         OwnerCollection,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$owner"}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         DogCollection,
			"localField":   "owner._id",
			"foreignField": "owner",
			"as":           "dogs",
		}}},
	}
}

func normalize(fb bookings.FullBooking) bookings.FullBooking {
	if fb.Dogs == nil {
		fb.Dogs = []dogs.Dog{}
	}
	return fb
}
