package entity

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderNumberFormat(t *testing.T) {
	gen := NewNumberGenerator()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	pattern := regexp.MustCompile(`^ORD-20250615-\d{5}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, gen.OrderNumber(now))
	}
}
