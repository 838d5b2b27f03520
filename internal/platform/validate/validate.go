package validate

import (
	"errors"

	"dog-walking/internal/domain/errs"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrObjectID es el detalle de ValidationError para referencias mal formadas.
var ErrObjectID = errors.New("must be a 24-character hex ObjectID")

// validator cachea la metadata de structs y es seguro para uso concurrente.
var v = newValidator()

func newValidator() *validator.Validate {
	vv := validator.New()
	// El tag "mongodb" del validator solo acepta minúsculas; el driver acepta ambas.
	_ = vv.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	return vv
}

// ObjectID convierte una referencia textual en un ObjectID.
// Acepta las mismas cadenas que primitive.ObjectIDFromHex (24 hex, mayúsculas o minúsculas);
// cualquier otra cosa devuelve errs.ValidationError.
func ObjectID(field, raw string) (primitive.ObjectID, error) {
	if err := v.Var(raw, "required,objectid"); err != nil {
		return primitive.NilObjectID, errs.Validation(field, ErrObjectID)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, errs.Validation(field, ErrObjectID)
	}
	return id, nil
}
