// Package schedule is the pure balance & schedule calculator. It has no
// side effects and no storage dependencies; every function is a plain
// computation over loan terms and ledger entries.
package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"goldvault-backend/internal/domain/payment"
)

const hoursPerDay = 24

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// TotalInterest computes flat (simple) interest over the full tenure:
// principal * annualRatePercent * tenureMonths / (12 * 100), rounded to
// 2 decimal places. This is intentionally a flat-rate convention, not
// amortizing/reducing-balance.
func TotalInterest(principal, annualRatePercent float64, tenureMonths int) float64 {
	p := decimal.NewFromFloat(principal)
	r := decimal.NewFromFloat(annualRatePercent)
	n := decimal.NewFromInt(int64(tenureMonths))
	i := p.Mul(r).Mul(n).Div(twelve.Mul(hundred))
	f, _ := i.Round(2).Float64()
	return f
}

// EMI is the equated installment under the flat schedule:
// (principal + total interest) / tenureMonths, rounded to 2 decimal places.
func EMI(principal, annualRatePercent float64, tenureMonths int) float64 {
	if tenureMonths <= 0 {
		return 0
	}
	p := decimal.NewFromFloat(principal)
	i := decimal.NewFromFloat(TotalInterest(principal, annualRatePercent, tenureMonths))
	emi := p.Add(i).Div(decimal.NewFromInt(int64(tenureMonths)))
	f, _ := emi.Round(2).Float64()
	return f
}

// OutstandingBalance is principal minus every COMPLETED principal-reducing
// entry (EMI, partial, closure), floored at 0. Disbursements, interest and
// penalties never reduce principal.
func OutstandingBalance(principal float64, entries []payment.Entry) float64 {
	out := decimal.NewFromFloat(principal)
	for _, e := range entries {
		if e.Status != payment.StatusCompleted || !e.PaymentType.ReducesPrincipal() {
			continue
		}
		out = out.Sub(decimal.NewFromFloat(e.Amount))
	}
	if out.IsNegative() {
		return 0
	}
	f, _ := out.Round(2).Float64()
	return f
}

// Overdue reports whether the loan is past maturity with money still owed,
// and how many whole days past maturity it is. Days are counted regardless
// of balance so a freshly-settled loan still reports its aging as 0 only
// when it was settled in time.
func Overdue(maturity *time.Time, outstanding float64, now time.Time) (isOverdue bool, daysOverdue int) {
	if maturity == nil || !now.After(*maturity) {
		return false, 0
	}
	daysOverdue = int(now.Sub(*maturity).Hours() / hoursPerDay)
	if daysOverdue < 0 {
		daysOverdue = 0
	}
	isOverdue = outstanding > 0
	return isOverdue, daysOverdue
}

// AgeBucket maps days overdue onto the fixed reporting ranges. Boundaries
// are inclusive-lower / exclusive-upper.
func AgeBucket(daysOverdue int) string {
	switch {
	case daysOverdue < 30:
		return "0-30"
	case daysOverdue < 60:
		return "30-60"
	case daysOverdue < 90:
		return "60-90"
	default:
		return "90+"
	}
}

// Installment is one projected due row of the flat repayment schedule.
type Installment struct {
	Number  int       `json:"number"`
	DueDate time.Time `json:"due_date"`
	Amount  float64   `json:"amount"`
}

// Installments projects the monthly due table from the disbursement date.
// The final installment absorbs the rounding drift so the column total is
// exactly principal + total interest.
func Installments(principal, annualRatePercent float64, tenureMonths int, start time.Time) []Installment {
	if tenureMonths <= 0 {
		return nil
	}
	emi := decimal.NewFromFloat(EMI(principal, annualRatePercent, tenureMonths))
	total := decimal.NewFromFloat(principal).
		Add(decimal.NewFromFloat(TotalInterest(principal, annualRatePercent, tenureMonths)))

	rows := make([]Installment, 0, tenureMonths)
	for i := 1; i <= tenureMonths; i++ {
		amt := emi
		if i == tenureMonths {
			amt = total.Sub(emi.Mul(decimal.NewFromInt(int64(tenureMonths - 1)))).Round(2)
		}
		f, _ := amt.Float64()
		rows = append(rows, Installment{
			Number:  i,
			DueDate: start.AddDate(0, i, 0),
			Amount:  f,
		})
	}
	return rows
}
