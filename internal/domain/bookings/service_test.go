package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"dog-walking/internal/domain/errs"
	"dog-walking/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// -------------------------
// Test repo
// -------------------------

type testRepo struct {
	created  []Booking
	nows     []time.Time
	cancelID primitive.ObjectID
	getID    primitive.ObjectID

	list    []FullBooking
	listErr error
}

func (r *testRepo) Create(ctx context.Context, b Booking) (storage.InsertAck, error) {
	r.created = append(r.created, b)
	return storage.InsertAck{InsertedID: b.ID}, nil
}

func (r *testRepo) Cancel(ctx context.Context, id primitive.ObjectID) (storage.UpdateAck, error) {
	r.cancelID = id
	return storage.UpdateAck{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *testRepo) ListUpcoming(ctx context.Context, now time.Time) ([]FullBooking, error) {
	r.nows = append(r.nows, now)
	return r.list, r.listErr
}

func (r *testRepo) GetFull(ctx context.Context, id primitive.ObjectID) (FullBooking, error) {
	r.getID = id
	return FullBooking{ID: id}, nil
}

func TestToBooking(t *testing.T) {
	owner := primitive.NewObjectID()

	t.Run("ok normaliza a UTC ms", func(t *testing.T) {
		b, err := CreateBookingRequest{
			Owner:             owner.Hex(),
			StartTime:         "2030-01-02T10:00:00.123456+02:00",
			DurationInMinutes: 45,
		}.ToBooking()
		require.NoError(t, err)

		assert.False(t, b.ID.IsZero())
		assert.Equal(t, owner, b.Owner)
		assert.Equal(t, time.Date(2030, 1, 2, 8, 0, 0, 123000000, time.UTC), b.StartTime)
		assert.Equal(t, 45, b.DurationInMinutes)
		assert.False(t, b.Cancelled)
	})

	t.Run("owner inválido", func(t *testing.T) {
		_, err := CreateBookingRequest{Owner: "abc", StartTime: "2030-01-02T10:00:00Z"}.ToBooking()
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))

		var ve *errs.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "owner", ve.Field)
	})

	t.Run("start_time inválido", func(t *testing.T) {
		_, err := CreateBookingRequest{Owner: owner.Hex(), StartTime: "tomorrow"}.ToBooking()
		require.Error(t, err)

		var ve *errs.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "start_time", ve.Field)
	})

	t.Run("duración sin validar", func(t *testing.T) {
		b, err := CreateBookingRequest{Owner: owner.Hex(), StartTime: "2030-01-02T10:00:00Z", DurationInMinutes: -5}.ToBooking()
		require.NoError(t, err)
		assert.Equal(t, -5, b.DurationInMinutes)
	})
}

func TestService_Create_InvalidDoesNotWrite(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateBookingRequest{Owner: "zzz", StartTime: "2030-01-02T10:00:00Z"})
	require.Error(t, err)
	assert.Empty(t, repo.created)

	ack, err := svc.Create(context.Background(), CreateBookingRequest{
		Owner:     primitive.NewObjectID().Hex(),
		StartTime: "2030-01-02T10:00:00Z",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, repo.created[0].ID, ack.InsertedID)
}

func TestService_ListUpcoming_ClockOncePerCall(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	calls := 0
	loc := time.FixedZone("ART", -3*60*60)
	fixed := time.Date(2030, 5, 1, 12, 0, 0, 0, loc)
	svc.now = func() time.Time {
		calls++
		return fixed
	}

	items, err := svc.ListUpcoming(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	require.Len(t, repo.nows, 1)
	assert.True(t, repo.nows[0].Equal(fixed))
	assert.Equal(t, time.UTC, repo.nows[0].Location())

	// nil del repo sale como lista vacía
	require.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestService_ListUpcoming_PropagatesError(t *testing.T) {
	repo := &testRepo{listErr: errs.Db("aggregate bookings", errors.New("boom"))}
	svc := NewService(repo)

	_, err := svc.ListUpcoming(context.Background())
	require.Error(t, err)
	assert.True(t, errs.IsDb(err))
}

func TestService_InvalidID(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Get(context.Background(), "not-hex")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, "Invalid ID", err.Error())

	_, err = svc.Cancel(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	assert.True(t, repo.cancelID.IsZero())
}

func TestService_PassesParsedID(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	id := primitive.NewObjectID()

	_, err := svc.Cancel(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, repo.cancelID)

	fb, err := svc.Get(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, repo.getID)
	assert.Equal(t, id, fb.ID)
}
