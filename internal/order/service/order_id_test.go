package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderIDGenerator_Format(t *testing.T) {
	gen := &OrderIDGenerator{intN: func(n int) int { return 42 }}
	now := time.UnixMilli(1705314600000)

	assert.Equal(t, "ORD170531460000042", gen.NewID(now))
}

func TestOrderIDGenerator_RandomSuffixBounded(t *testing.T) {
	var bound int
	gen := &OrderIDGenerator{intN: func(n int) int { bound = n; return n - 1 }}

	id := gen.NewID(time.UnixMilli(1))

	assert.Equal(t, 1000, bound)
	assert.Equal(t, "ORD1999", id)
}

func TestOrderIDGenerator_DefaultSource(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD\d+$`)
	gen := NewOrderIDGenerator()

	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, gen.NewID(time.Now()))
	}
}
