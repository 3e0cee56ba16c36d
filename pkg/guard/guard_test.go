package guard

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	var g Guard
	assert.Equal(t, Created, g.State())
	assert.Equal(t, 0, g.Readers())
	assert.False(t, g.Writer())
	assert.NoError(t, g.Alive("on_teardown"))
	assert.NoError(t, g.Shared("peek"))
	assert.NoError(t, g.Exclusive("push"))
}

func TestTouch(t *testing.T) {
	var g Guard
	g.Touch()
	assert.Equal(t, Populated, g.State())

	require.NoError(t, g.TearDown("close"))
	g.Touch()
	assert.Equal(t, TornDown, g.State())
}

func TestManyReaders(t *testing.T) {
	var g Guard
	b1, err := g.Borrow("iter")
	require.NoError(t, err)
	b2, err := g.Borrow("iter")
	require.NoError(t, err)

	assert.Equal(t, 2, g.Readers())
	assert.NoError(t, g.Shared("peek"))

	err = g.Exclusive("push")
	assert.Equal(t, ErrBorrowed, errors.Cause(err))
	assert.EqualError(t, err, "push: 2 live readers: list is borrowed")

	_, err = g.BorrowMut("iter_mut")
	assert.Equal(t, ErrBorrowed, errors.Cause(err))

	b1.Release()
	b1.Release()
	assert.Equal(t, 1, g.Readers())

	b2.Release()
	assert.Equal(t, 0, g.Readers())
	assert.NoError(t, g.Exclusive("push"))
}

func TestSingleWriter(t *testing.T) {
	var g Guard
	b, err := g.BorrowMut("iter_mut")
	require.NoError(t, err)
	assert.True(t, b.Mut())
	assert.True(t, g.Writer())

	_, err = g.BorrowMut("iter_mut")
	assert.Equal(t, ErrMutBorrowed, errors.Cause(err))

	_, err = g.Borrow("iter")
	assert.EqualError(t, err, "iter: list is mutably borrowed")

	err = g.TearDown("close")
	assert.Equal(t, ErrMutBorrowed, errors.Cause(err))
	assert.Equal(t, Created, g.State())

	b.Release()
	assert.True(t, b.Released())
	assert.False(t, g.Writer())

	_, err = g.Borrow("iter")
	assert.NoError(t, err)
}

func TestTerminalStates(t *testing.T) {
	var moved, torn Guard
	require.NoError(t, moved.Move("into_iter"))
	require.NoError(t, torn.TearDown("close"))

	for _, tc := range []struct {
		g    *Guard
		want error
	}{
		{&moved, ErrMoved},
		{&torn, ErrTornDown},
	} {
		assert.Equal(t, tc.want, errors.Cause(tc.g.Alive("on_teardown")))
		assert.Equal(t, tc.want, errors.Cause(tc.g.Shared("peek")))
		assert.Equal(t, tc.want, errors.Cause(tc.g.Exclusive("pop")))
		assert.Equal(t, tc.want, errors.Cause(tc.g.TearDown("close")))
		assert.Equal(t, tc.want, errors.Cause(tc.g.Move("into_iter")))

		_, err := tc.g.Borrow("iter")
		assert.Equal(t, tc.want, errors.Cause(err))
	}
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.PanicsWithError(t, "pop: list has been moved", func() {
		Must(errors.Wrap(ErrMoved, "pop"))
	})
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "populated", Populated.String())
	assert.Equal(t, "moved", Moved.String())
	assert.Equal(t, "torn-down", TornDown.String())
	assert.Equal(t, "unknown", State(42).String())
}
