// Package quote turns competitor prices for a handset into a purchase
// offer. The arithmetic lives in pure functions; the only non-deterministic
// input, the goodwill bonus, sits behind an injectable draw so tests can
// pin it.
package quote

import (
	"math"
	"math/rand/v2"
)

// Device identifies the handset being quoted.
type Device struct {
	Brand   string
	Model   string
	Storage string
}

// Condition is the itemized state of a handset. Screen and Body grade
// from 1 (worst) to 4 (pristine).
type Condition struct {
	Screen          int
	Body            int
	FullyFunctional bool
	CameraWorks     bool
	BatteryHealthy  bool
	OriginalBox     bool
	ChargerIncluded bool
}

// ConditionAdjusted degrades base by the handset's condition. Step order
// is fixed: percentage deductions first, functional multipliers next,
// accessory additions last. Reordering changes the result.
func ConditionAdjusted(base float64, c Condition) float64 {
	price := base
	price -= float64(4-c.Screen) * price * 0.15
	price -= float64(4-c.Body) * price * 0.10
	if !c.FullyFunctional {
		price *= 0.4
	}
	if !c.CameraWorks {
		price *= 0.8
	}
	if !c.BatteryHealthy {
		price *= 0.9
	}
	if c.OriginalBox {
		price += 10
	}
	if c.ChargerIncluded {
		price += 5
	}
	return price
}

// BonusFunc draws the goodwill bonus added on top of every offer.
type BonusFunc func() int

// RandomBonus draws a bonus in [5, 30] inclusive.
func RandomBonus() int {
	return rand.IntN(26) + 5
}

// Calculator finalizes an offer from an adjusted base price.
type Calculator struct {
	bonus BonusFunc
}

// NewCalculator builds a calculator around the given bonus draw, or
// RandomBonus when nil.
func NewCalculator(bonus BonusFunc) *Calculator {
	if bonus == nil {
		bonus = RandomBonus
	}
	return &Calculator{bonus: bonus}
}

// Offer rounds the base to the nearest whole unit and adds the bonus.
func (c *Calculator) Offer(base float64) int {
	return int(math.Round(base)) + c.bonus()
}
