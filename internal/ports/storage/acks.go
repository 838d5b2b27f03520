package storage

import "go.mongodb.org/mongo-driver/bson/primitive"

// InsertAck es el acuse de inserción del driver, no el registro guardado.
type InsertAck struct {
	InsertedID primitive.ObjectID `json:"insertedId"`
}

// UpdateAck refleja el resultado de un update_one.
// UpsertedID queda en null: nunca hacemos upsert.
type UpdateAck struct {
	MatchedCount  int64               `json:"matchedCount"`
	ModifiedCount int64               `json:"modifiedCount"`
	UpsertedID    *primitive.ObjectID `json:"upsertedId"`
}
