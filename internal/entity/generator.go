package entity

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NumberGenerator produces human-readable order numbers. It is
// injected so tests can supply deterministic values.
type NumberGenerator interface {
	OrderNumber(now time.Time) string
}

type randomNumberGenerator struct{}

// NewNumberGenerator returns the default random generator.
func NewNumberGenerator() NumberGenerator { return randomNumberGenerator{} }

// OrderNumber returns a number in the form ORD-YYYYMMDD-#####.
func (randomNumberGenerator) OrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%05d", now.Format("20060102"), rand.IntN(90000)+10000)
}
