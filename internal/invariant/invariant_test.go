package invariant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreconditionPassesWhenTrue(t *testing.T) {
	assert.NotPanics(t, func() {
		Precondition(1+1 == 2, "math still works")
	})
}

func TestPreconditionPanicsWhenFalse(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		msg, ok := r.(string)
		assert.True(t, ok)
		assert.Contains(t, msg, "PRECONDITION VIOLATION: builder stack must not be empty")
	}()
	Precondition(false, "builder stack must not be empty")
}

func TestInvariantPanicsWhenFalse(t *testing.T) {
	assert.Panics(t, func() {
		Invariant(false, "parser must advance, pos=%d", 3)
	})
}
