package dogs

import (
	"dog-walking/internal/platform/validate"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateDogRequest es el cuerpo de POST /dog.
// Age fuera de 0..255 falla en el decode JSON.
type CreateDogRequest struct {
	Owner string  `json:"owner"`
	Name  *string `json:"name"`
	Age   *uint8  `json:"age"`
	Breed *string `json:"breed"`
}

func (r CreateDogRequest) ToDog() (Dog, error) {
	owner, err := validate.ObjectID("owner", r.Owner)
	if err != nil {
		return Dog{}, err
	}
	return Dog{
		ID:    primitive.NewObjectID(),
		Owner: owner,
		Name:  r.Name,
		Age:   r.Age,
		Breed: r.Breed,
	}, nil
}
