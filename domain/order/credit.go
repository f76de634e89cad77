package order

import "github.com/kchelvan55/customer-admin-app-sub000/domain/shared"

// PaymentTerms is the shop's billing configuration, resolved at the
// boundary and passed in read-only.
type PaymentTerms struct {
	CreditLimit        shared.Money
	OutstandingBalance shared.Money
	TermDays           int
}

// ExceedsCreditLimit reports whether placing this order would push the
// shop's exposure past its credit limit. A zero credit limit means the
// shop is not credit-capped.
func ExceedsCreditLimit(o *Order, terms PaymentTerms) (bool, error) {
	if terms.CreditLimit.IsZero() {
		return false, nil
	}

	exposure, err := terms.OutstandingBalance.Add(o.TotalPrice())
	if err != nil {
		return false, err
	}
	return exposure.IsGreaterThan(terms.CreditLimit), nil
}
