package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	OwnerCollection   = "owner"
	DogCollection     = "dog"
	BookingCollection = "booking"

	DefaultDatabase = "dog_walking"
)

var ErrNoURI = errors.New("mongo uri required")

type Options struct {
	URI      string
	Database string

	// Clean borra la base antes de devolverla. Solo para bases de test.
	Clean bool

	// Timeout para connect + ping (default 10s).
	Timeout time.Duration
}

// DB mantiene el cliente (compartido, seguro para concurrencia) y la base elegida.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Open conecta y verifica con ping.
func Open(ctx context.Context, opts Options) (*DB, error) {
	uri := strings.TrimSpace(opts.URI)
	if uri == "" {
		return nil, ErrNoURI
	}
	name := strings.TrimSpace(opts.Database)
	if name == "" {
		name = DefaultDatabase
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(name)
	if opts.Clean {
		if err := db.Drop(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
	}

	return &DB{Client: client, Database: db}, nil
}

func (d *DB) Ping(ctx context.Context) error {
	return d.Client.Ping(ctx, readpref.Primary())
}

func (d *DB) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
