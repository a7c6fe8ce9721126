package tabu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabuList_FIFOEviction(t *testing.T) {
	l := newTabuList(2)
	l.Push("A")
	l.Push("B")
	assert.True(t, l.Contains("A"))
	assert.True(t, l.Contains("B"))

	l.Push("C")
	assert.False(t, l.Contains("A"), "oldest entry must be evicted first")
	assert.True(t, l.Contains("B"))
	assert.True(t, l.Contains("C"))
	assert.Equal(t, 2, l.Len())
}

func TestTabuList_ZeroCapacity(t *testing.T) {
	l := newTabuList(0)
	l.Push("A")
	assert.False(t, l.Contains("A"))
	assert.Equal(t, 0, l.Len())
}

func TestTabuList_RecencyNotFrequency(t *testing.T) {
	l := newTabuList(2)
	l.Push("A")
	l.Push("A")
	l.Push("B")
	// "A" was pushed twice; only one copy survives the eviction of the oldest.
	assert.True(t, l.Contains("A"))
	l.Push("C")
	assert.False(t, l.Contains("A"))
}
