package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistryCreateAndLookup(t *testing.T) {
	r := NewRegistry(time.Hour)

	_, found := r.Get(7)
	assert.False(t, found)

	s := NewSession(7)
	r.Put(s)

	got, found := r.Get(7)
	assert.True(t, found)
	assert.Same(t, s, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryEntrySurvivesFlowCompletion(t *testing.T) {
	r := NewRegistry(time.Hour)
	s := NewSession(7)
	s.State = StateIdle
	r.Put(s)

	// Idle sessions stay registered, ready for the next cycle.
	got, found := r.Get(7)
	assert.True(t, found)
	assert.Equal(t, StateIdle, got.State)
}

func TestRegistryIdleExpiry(t *testing.T) {
	r := NewRegistry(30 * time.Millisecond)
	r.Put(NewSession(7))

	time.Sleep(60 * time.Millisecond)

	_, found := r.Get(7)
	assert.False(t, found)
}

func TestRegistryDelete(t *testing.T) {
	r := NewRegistry(time.Hour)
	r.Put(NewSession(7))
	r.Delete(7)

	_, found := r.Get(7)
	assert.False(t, found)
}
