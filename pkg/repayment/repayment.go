// Package repayment computes amortized monthly instalments.
package repayment

import "math"

// Monthly returns the fixed monthly instalment that repays amount over
// duration months at interestRate percent per annum.
//
// A zero amount, rate or duration yields 0. When the rate is positive but
// too small to move (1+r)^n away from 1 in float64, the interest-free split
// amount/duration is returned instead of dividing by zero.
func Monthly(amount, interestRate float64, duration int) float64 {
	if amount == 0 || interestRate == 0 || duration == 0 {
		return 0
	}
	monthlyInterest := interestRate / (12 * 100)
	growth := math.Pow(1+monthlyInterest, float64(duration))
	if growth == 1 {
		return amount / float64(duration)
	}
	return (amount * monthlyInterest * growth) / (growth - 1)
}
