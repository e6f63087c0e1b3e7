package models

import "time"

// Transaction types
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is a financial ledger entry (income or expense).
type Transaction struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Description   string    `json:"description,omitempty"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Date          string    `json:"date"` // YYYY-MM-DD
	CreatedAt     time.Time `json:"created_at"`
}

type CreateTransactionRequest struct {
	Type          string  `json:"type"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Date          string  `json:"date"`
}

// FinanceSummary aggregates the ledger over a date range.
type FinanceSummary struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}
