package own

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBorrowLeavesOwnershipInPlace(t *testing.T) {
	cell := New("config", "value")

	require.Equal(t, "value", *cell.Borrow())
	require.False(t, cell.Moved())

	// Borrowing any number of times is fine; ownership never moved.
	require.Equal(t, "value", *cell.Borrow())
}

func TestTakeMovesValueOut(t *testing.T) {
	cell := New("config", 42)

	got := cell.Take()

	require.Equal(t, 42, got)
	require.True(t, cell.Moved())
}

func TestTakeAfterTakePanics(t *testing.T) {
	cell := New("config", "value")
	_ = cell.Take()

	require.PanicsWithValue(t, `own: use of "config" after move`, func() {
		_ = cell.Take()
	})
}

func TestBorrowAfterTakePanics(t *testing.T) {
	cell := New("client", "value")
	_ = cell.Take()

	require.PanicsWithValue(t, `own: borrow of "client" after move`, func() {
		_ = cell.Borrow()
	})
}

func TestTakeReleasesBackingValue(t *testing.T) {
	cell := New("buf", []byte("payload"))

	got := cell.Take()
	require.Equal(t, []byte("payload"), got)

	// The cell drops its reference on move so the taker is the only owner.
	cell.moved = false // reach inside: the zeroed slot is an implementation detail
	require.Nil(t, *cell.Borrow())
}
