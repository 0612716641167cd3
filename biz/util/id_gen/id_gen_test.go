package id_gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.NotEmpty(t, id)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicated id: %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestIDGenerator_Stop(t *testing.T) {
	g := NewIDGenerator(2)
	assert.NotEmpty(t, g.NewID())
	g.Stop()
	g.Stop() // idempotent
}
