// Package docs registra el documento OpenAPI del servicio en swag.
// Sigue el formato que genera `swag init`; regenerar con
// `swag init -g cmd/api/main.go` si cambian las anotaciones de los handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/owner": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["owners"],
                "summary": "Crear dueño",
                "parameters": [
                    {
                        "description": "Datos del dueño",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/owners.CreateOwnerRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/storage.InsertAck"}},
                    "500": {"description": "texto del error", "schema": {"type": "string"}}
                }
            }
        },
        "/dog": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Crear perro",
                "parameters": [
                    {
                        "description": "Datos del perro",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dogs.CreateDogRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/storage.InsertAck"}},
                    "500": {"description": "owner inválido / error de base", "schema": {"type": "string"}}
                }
            }
        },
        "/booking": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Listar reservas próximas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/bookings.FullBooking"}}},
                    "500": {"description": "error de base", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Crear reserva de paseo",
                "parameters": [
                    {
                        "description": "Datos de la reserva",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/bookings.CreateBookingRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/storage.InsertAck"}},
                    "500": {"description": "owner/start_time inválido / error de base", "schema": {"type": "string"}}
                }
            }
        },
        "/booking/{bookingID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Obtener reserva",
                "parameters": [
                    {"type": "string", "description": "ObjectID de la reserva", "name": "bookingID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/bookings.FullBooking"}},
                    "500": {"description": "Invalid ID / Booking not found / error de base", "schema": {"type": "string"}}
                }
            }
        },
        "/booking/{bookingID}/cancel": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Cancelar reserva",
                "parameters": [
                    {"type": "string", "description": "ObjectID de la reserva", "name": "bookingID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/storage.UpdateAck"}},
                    "500": {"description": "Invalid ID / error de base", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "owners.CreateOwnerRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "owners.Owner": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "dogs.CreateDogRequest": {
            "type": "object",
            "properties": {
                "owner": {"type": "string"},
                "name": {"type": "string"},
                "age": {"type": "integer", "maximum": 255, "minimum": 0},
                "breed": {"type": "string"}
            }
        },
        "dogs.Dog": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "owner": {"type": "string"},
                "name": {"type": "string"},
                "age": {"type": "integer"},
                "breed": {"type": "string"}
            }
        },
        "bookings.CreateBookingRequest": {
            "type": "object",
            "properties": {
                "owner": {"type": "string"},
                "start_time": {"type": "string"},
                "duration_in_minutes": {"type": "integer"}
            }
        },
        "bookings.FullBooking": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "owner": {"$ref": "#/definitions/owners.Owner"},
                "start_time": {"type": "string"},
                "duration_in_minutes": {"type": "integer"},
                "cancelled": {"type": "boolean"},
                "dogs": {"type": "array", "items": {"$ref": "#/definitions/dogs.Dog"}}
            }
        },
        "storage.InsertAck": {
            "type": "object",
            "properties": {
                "insertedId": {"type": "string"}
            }
        },
        "storage.UpdateAck": {
            "type": "object",
            "properties": {
                "matchedCount": {"type": "integer"},
                "modifiedCount": {"type": "integer"},
                "upsertedId": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dog Walking API",
	Description:      "Dueños, perros y reservas de paseo sobre MongoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
