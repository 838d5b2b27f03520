package dogs

import "go.mongodb.org/mongo-driver/bson/primitive"

// Dog referencia a su dueño por id; no se verifica que el dueño exista.
// Los campos opcionales se guardan como null cuando no vienen.
type Dog struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Owner primitive.ObjectID `bson:"owner" json:"owner"`
	Name  *string            `bson:"name" json:"name"`
	Age   *uint8             `bson:"age" json:"age"`
	Breed *string            `bson:"breed" json:"breed"`
}
