package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"carwash-backend/internal/models"
)

func TestFinanceCreate_RejectsInvalidInput(t *testing.T) {
	s := NewFinanceService(nil)
	ctx := context.Background()

	_, err := s.Create(ctx, &models.CreateTransactionRequest{Type: "transfer", Amount: 10})
	assert.Error(t, err, "unknown type")

	_, err = s.Create(ctx, &models.CreateTransactionRequest{Type: models.TransactionIncome, Amount: 0})
	assert.Error(t, err, "zero amount")

	_, err = s.Create(ctx, &models.CreateTransactionRequest{Type: models.TransactionExpense, Amount: -5})
	assert.Error(t, err, "negative amount")

	_, err = s.Create(ctx, &models.CreateTransactionRequest{
		Type: models.TransactionIncome, Amount: 10, Date: "15/01/2026",
	})
	assert.Error(t, err, "bad date format")
}
