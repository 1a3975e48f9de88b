package errutil

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFirst(t *testing.T) {
	e1 := errors.New("one")
	e2 := errors.New("two")

	require.NoError(t, First())
	require.NoError(t, First(nil, nil))
	require.Equal(t, e1, First(nil, e1, e2))
	require.Equal(t, e2, First(e2, e1))
}

func TestBugOnRespectsDebug(t *testing.T) {
	prev := SetDebug(false)
	defer SetDebug(prev)

	require.NotPanics(t, func() { BugOn(true, "ignored %d", 1) })

	SetDebug(true)
	require.True(t, Debug())
	require.NotPanics(t, func() { BugOn(false, "not raised") })
	require.PanicsWithValue(t, "BUG: bad node 7", func() { BugOn(true, "bad node %d", 7) })
}
