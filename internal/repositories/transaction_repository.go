package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
)

type TransactionRepository struct {
	DB *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

var transactionSortColumns = map[string]bool{
	"date": true, "type": true, "category": true, "amount": true, "created_at": true,
}

const transactionSelect = `
	SELECT id, type, category, description, amount, payment_method, date, created_at
	FROM transactions
`

func (r *TransactionRepository) List(ctx context.Context, sort string) ([]*models.Transaction, error) {
	query := transactionSelect + orderClause(sort, transactionSortColumns, "date DESC, created_at DESC")
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Transaction
	for rows.Next() {
		t := &models.Transaction{}
		err := rows.Scan(&t.ID, &t.Type, &t.Category, &t.Description, &t.Amount,
			&t.PaymentMethod, &t.Date, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	t.ID = uuid.NewString()
	err := r.DB.QueryRow(ctx, `
		INSERT INTO transactions (id, type, category, description, amount, payment_method, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, t.ID, t.Type, t.Category, t.Description, t.Amount, t.PaymentMethod, t.Date,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, "DELETE FROM transactions WHERE id = $1", id)
	return err
}

// Summary aggregates income and expense over an inclusive date range. Dates
// are YYYY-MM-DD strings, which compare correctly as text.
func (r *TransactionRepository) Summary(ctx context.Context, from, to string) (*models.FinanceSummary, error) {
	s := &models.FinanceSummary{From: from, To: to}
	err := r.DB.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions
		WHERE date >= $1 AND date <= $2
	`, from, to).Scan(&s.TotalIncome, &s.TotalExpense)
	if err != nil {
		return nil, err
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s, nil
}
