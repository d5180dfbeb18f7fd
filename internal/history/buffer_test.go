package history

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsZeroCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := New(capacity)
		require.Error(t, err)
	}
}

func TestAppendKeepsLastEntries(t *testing.T) {
	for capacity := 1; capacity <= 5; capacity++ {
		for n := 0; n <= 3*capacity+1; n++ {
			b, err := New(capacity)
			require.NoError(t, err)

			var all []string
			for i := 0; i < n; i++ {
				line := fmt.Sprintf("line-%d", i)
				all = append(all, line)
				b.Append(line)
			}

			want := all[max(0, n-capacity):]
			if len(want) == 0 {
				want = []string{}
			}
			assert.Equal(t, want, b.Entries(), "capacity=%d n=%d", capacity, n)
			assert.Equal(t, len(want), b.size)
			assert.Len(t, b.lines, capacity)
		}
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	for _, line := range []string{"a", "b", "c", "d"} {
		b.Append(line)
	}

	b.Clear()
	assert.Equal(t, 0, b.size)
	assert.Len(t, b.lines, 3)
	assert.Empty(t, b.Entries())

	for _, line := range []string{"e", "f", "g", "h"} {
		b.Append(line)
	}
	assert.Equal(t, []string{"f", "g", "h"}, b.Entries())
}

func TestAllIsRestartable(t *testing.T) {
	b, err := New(2)
	require.NoError(t, err)
	b.Append("x")
	b.Append("y")
	b.Append("z")

	first := slices.Collect(b.All())
	second := slices.Collect(b.All())
	assert.Equal(t, []string{"y", "z"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, b.size)
}

func TestAllStopsEarly(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)
	for _, line := range []string{"a", "b", "c"} {
		b.Append(line)
	}

	var seen []string
	for line := range b.All() {
		seen = append(seen, line)
		if line == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}
