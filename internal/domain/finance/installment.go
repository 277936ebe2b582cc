// Package finance holds the credit math shared by analysis and disbursement.
package finance

import "math"

// Installment computes the fixed monthly payment that retires principal over
// termMonths at monthlyRate percent per month (Price/French amortization).
// A zero rate degenerates to straight division. Nothing is rounded here;
// presentation layers round the final value if they need to.
func Installment(principal, monthlyRate float64, termMonths int) float64 {
	if monthlyRate == 0 {
		return principal / float64(termMonths)
	}
	i := monthlyRate / 100
	factor := math.Pow(1+i, float64(termMonths))
	return principal * i * factor / (factor - 1)
}
