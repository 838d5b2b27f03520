package memory

import (
	"context"
	"testing"
	"time"

	"dog-walking/internal/domain/bookings"
	"dog-walking/internal/domain/dogs"
	"dog-walking/internal/domain/errs"
	"dog-walking/internal/domain/owners"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	ctx      context.Context
	owners   owners.Repository
	dogs     dogs.Repository
	bookings bookings.Repository
}

func newFixture() fixture {
	s := NewStore()
	return fixture{
		ctx:      context.Background(),
		owners:   NewOwnerRepo(s),
		dogs:     NewDogRepo(s),
		bookings: NewBookingRepo(s),
	}
}

func (f fixture) owner(t *testing.T, name string) owners.Owner {
	t.Helper()
	o := owners.Owner{ID: primitive.NewObjectID(), Name: name}
	_, err := f.owners.Create(f.ctx, o)
	require.NoError(t, err)
	return o
}

func (f fixture) booking(t *testing.T, owner primitive.ObjectID, start time.Time, cancelled bool) bookings.Booking {
	t.Helper()
	b := bookings.Booking{
		ID:                primitive.NewObjectID(),
		Owner:             owner,
		StartTime:         start,
		DurationInMinutes: 30,
		Cancelled:         cancelled,
	}
	ack, err := f.bookings.Create(f.ctx, b)
	require.NoError(t, err)
	require.Equal(t, b.ID, ack.InsertedID)
	return b
}

func TestListUpcoming_FiltersAndJoins(t *testing.T) {
	f := newFixture()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	ann := f.owner(t, "Ann")
	rex := "Rex"
	_, err := f.dogs.Create(f.ctx, dogs.Dog{ID: primitive.NewObjectID(), Owner: ann.ID, Name: &rex})
	require.NoError(t, err)

	upcoming := f.booking(t, ann.ID, now.Add(time.Hour), false)
	atNow := f.booking(t, ann.ID, now, false)
	f.booking(t, ann.ID, now.Add(-time.Minute), false)               // pasada
	f.booking(t, ann.ID, now.Add(2*time.Hour), true)                 // cancelada
	f.booking(t, primitive.NewObjectID(), now.Add(time.Hour), false) // owner inexistente

	items, err := f.bookings.ListUpcoming(f.ctx, now)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// orden de inserción
	assert.Equal(t, upcoming.ID, items[0].ID)
	assert.Equal(t, atNow.ID, items[1].ID)

	assert.Equal(t, "Ann", items[0].Owner.Name)
	require.Len(t, items[0].Dogs, 1)
	assert.Equal(t, "Rex", *items[0].Dogs[0].Name)
}

func TestListUpcoming_EmptyIsNotNil(t *testing.T) {
	f := newFixture()
	items, err := f.bookings.ListUpcoming(f.ctx, time.Now())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetFull_IgnoresCancelledAndTime(t *testing.T) {
	f := newFixture()
	ann := f.owner(t, "Ann")
	past := f.booking(t, ann.ID, time.Now().Add(-48*time.Hour), true)

	fb, err := f.bookings.GetFull(f.ctx, past.ID)
	require.NoError(t, err)
	assert.True(t, fb.Cancelled)
	assert.Equal(t, ann.ID, fb.Owner.ID)
	assert.NotNil(t, fb.Dogs)
	assert.Empty(t, fb.Dogs)
}

func TestGetFull_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.bookings.GetFull(f.ctx, primitive.NewObjectID())
	assert.True(t, errs.IsNotFound(err))

	orphan := f.booking(t, primitive.NewObjectID(), time.Now().Add(time.Hour), false)
	_, err = f.bookings.GetFull(f.ctx, orphan.ID)
	assert.True(t, errs.IsNotFound(err), "booking without owner is dropped by the join")
}

func TestCancel_IdempotentAndZeroMatch(t *testing.T) {
	f := newFixture()
	ann := f.owner(t, "Ann")
	b := f.booking(t, ann.ID, time.Now().Add(time.Hour), false)

	ack, err := f.bookings.Cancel(f.ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, ack.MatchedCount)
	assert.EqualValues(t, 1, ack.ModifiedCount)

	ack, err = f.bookings.Cancel(f.ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, ack.MatchedCount)
	assert.EqualValues(t, 0, ack.ModifiedCount)

	fb, err := f.bookings.GetFull(f.ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, fb.Cancelled)

	ack, err = f.bookings.Cancel(f.ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.EqualValues(t, 0, ack.MatchedCount)
	assert.Nil(t, ack.UpsertedID)
}

func TestCreate_RejectsDuplicateID(t *testing.T) {
	f := newFixture()
	o := f.owner(t, "Ann")

	_, err := f.owners.Create(f.ctx, o)
	assert.True(t, errs.IsDb(err))
}
