package owners

import "go.mongodb.org/mongo-driver/bson/primitive"

// Owner es quien tiene perros y agenda paseos. No se modifica ni se borra.
type Owner struct {
	ID      primitive.ObjectID `bson:"_id" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   string             `bson:"phone" json:"phone"`
	Address string             `bson:"address" json:"address"`
}
