package models

import "time"

// ExpenseCategory enumerates the expense ledger categories.
type ExpenseCategory string

const (
	ExpenseFuel        ExpenseCategory = "fuel"
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseInsurance   ExpenseCategory = "insurance"
	ExpenseTax         ExpenseCategory = "tax"
	ExpenseOther       ExpenseCategory = "other"
)

// ValidExpenseCategory reports whether c is one of the known categories.
func ValidExpenseCategory(c ExpenseCategory) bool {
	switch c {
	case ExpenseFuel, ExpenseMaintenance, ExpenseInsurance, ExpenseTax, ExpenseOther:
		return true
	}
	return false
}

type Expense struct {
	ID         string
	UserID     string
	VehicleID  string
	Category   ExpenseCategory
	Amount     float64
	Date       time.Time
	Notes      string
	ReceiptKey string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TotalAmount sums the amount field over expenses. An empty slice sums
// to 0; aggregation is exact, display rounding is the client's concern.
func TotalAmount(expenses []*Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}
