package airport_test

import (
	"testing"

	"github.com/katalvlaran/rendezvous/airport"
	"github.com/stretchr/testify/require"
)

func TestRegister_NewAndExisting(t *testing.T) {
	r := airport.NewRegistry()

	require.True(t, r.Register("AAA"))
	require.False(t, r.Register("AAA"), "re-registering an existing code reports false")
	require.True(t, r.Register("BBB"))
	require.Equal(t, 2, r.Size())
}

func TestIndexBijection(t *testing.T) {
	// P1: for every registered code c, CodeOf(IndexOf(c)) == c, and indices
	// are contiguous from 0.
	r := airport.NewRegistry()
	codes := []string{"AAA", "BBB", "CCC", "DDD"}
	for _, c := range codes {
		r.Register(c)
	}

	for wantIdx, c := range codes {
		idx, ok := r.IndexOf(c)
		require.True(t, ok)
		require.Equal(t, wantIdx, idx)

		gotCode, ok := r.CodeOf(idx)
		require.True(t, ok)
		require.Equal(t, c, gotCode)
	}
	require.Equal(t, codes, r.Codes())
}

func TestIndexOf_Unknown(t *testing.T) {
	r := airport.NewRegistry()
	_, ok := r.IndexOf("ZZZ")
	require.False(t, ok)
}

func TestCodeOf_OutOfRange(t *testing.T) {
	r := airport.NewRegistry()
	r.Register("AAA")

	_, ok := r.CodeOf(-1)
	require.False(t, ok)
	_, ok = r.CodeOf(1)
	require.False(t, ok)
}

func TestCodesOrder_FirstSeen(t *testing.T) {
	r := airport.NewRegistry()
	r.Register("CCC")
	r.Register("AAA")
	r.Register("BBB")

	require.Equal(t, []string{"CCC", "AAA", "BBB"}, r.Codes())
}
