package owners

import "go.mongodb.org/mongo-driver/bson/primitive"

// CreateOwnerRequest es el cuerpo de POST /owner.
type CreateOwnerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ToOwner asigna un id nuevo. Sin validación de formato (email, phone).
func (r CreateOwnerRequest) ToOwner() (Owner, error) {
	return Owner{
		ID:      primitive.NewObjectID(),
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}, nil
}
