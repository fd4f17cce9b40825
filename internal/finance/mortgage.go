// Package finance holds the pure calculations: mortgage amortization, market
// aggregates, comparable-sales valuation and agent commission.
package finance

import (
	"fmt"
	"math"

	"github.com/denisok6893-rgb/real-estate-manager/internal/domain"
)

type Mortgage struct {
	LoanAmount     float64 `json:"loan_amount"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

// CalculateMortgage amortizes price-down over termYears at an annual rate given
// in percent. A zero rate is repaid in equal instalments with no interest.
func CalculateMortgage(price, down, ratePercent float64, termYears int) (Mortgage, error) {
	if termYears <= 0 {
		return Mortgage{}, fmt.Errorf("%w: loan term must be positive, got %d years", domain.ErrInvalidInput, termYears)
	}
	if price < 0 || down < 0 || math.IsNaN(price) || math.IsNaN(down) {
		return Mortgage{}, fmt.Errorf("%w: price and down payment must be non-negative", domain.ErrInvalidInput)
	}
	if down >= price {
		return Mortgage{}, fmt.Errorf("%w: down payment %.2f leaves no loan on price %.2f", domain.ErrInvalidInput, down, price)
	}
	if ratePercent < 0 || math.IsNaN(ratePercent) {
		return Mortgage{}, fmt.Errorf("%w: interest rate must be non-negative, got %v", domain.ErrInvalidInput, ratePercent)
	}

	loan := price - down
	monthlyRate := ratePercent / 100 / 12
	n := float64(termYears * 12)

	if monthlyRate == 0 {
		return Mortgage{
			LoanAmount:     loan,
			MonthlyPayment: loan / n,
			TotalPayment:   loan,
			TotalInterest:  0,
		}, nil
	}

	growth := math.Pow(1+monthlyRate, n)
	payment := loan * monthlyRate * growth / (growth - 1)
	total := payment * n
	return Mortgage{
		LoanAmount:     loan,
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - loan,
	}, nil
}

// Commission returns amount*rate for a rate in [0,1].
func Commission(amount, rate float64) (float64, error) {
	if rate < 0 || rate > 1 || math.IsNaN(rate) {
		return 0, fmt.Errorf("%w: commission rate must be within [0,1], got %v", domain.ErrInvalidInput, rate)
	}
	if amount < 0 || math.IsNaN(amount) {
		return 0, fmt.Errorf("%w: amount must be non-negative, got %v", domain.ErrInvalidInput, amount)
	}
	return amount * rate, nil
}

// ApplyCommission fills t.Commission from the agent's rate unless the caller
// already set one.
func ApplyCommission(t *domain.Transaction, agent domain.Agent) error {
	if t.Commission != 0 {
		return nil
	}
	c, err := Commission(t.Amount, agent.CommissionRate)
	if err != nil {
		return err
	}
	t.Commission = c
	return nil
}
