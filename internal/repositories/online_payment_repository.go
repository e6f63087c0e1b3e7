package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"carwash-backend/internal/models"
)

type OnlinePaymentRepository struct {
	DB *pgxpool.Pool
}

func NewOnlinePaymentRepository(db *pgxpool.Pool) *OnlinePaymentRepository {
	return &OnlinePaymentRepository{DB: db}
}

const onlinePaymentSelect = `
	SELECT id, razorpay_order_id, razorpay_payment_id, razorpay_signature, service_order_id,
	       order_number, client_name, amount, status, failure_reason, created_at, completed_at
	FROM online_payments
`

func (r *OnlinePaymentRepository) Create(ctx context.Context, p *models.OnlinePayment) error {
	p.ID = uuid.NewString()
	err := r.DB.QueryRow(ctx, `
		INSERT INTO online_payments (id, razorpay_order_id, service_order_id, order_number,
		                             client_name, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, p.ID, p.RazorpayOrderID, p.ServiceOrderID, p.OrderNumber,
		p.ClientName, p.Amount, models.OnlinePaymentPending,
	).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create online payment: %w", err)
	}
	p.Status = models.OnlinePaymentPending
	return nil
}

func (r *OnlinePaymentRepository) GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*models.OnlinePayment, error) {
	p := &models.OnlinePayment{}
	err := r.DB.QueryRow(ctx, onlinePaymentSelect+" WHERE razorpay_order_id = $1", razorpayOrderID).Scan(
		&p.ID, &p.RazorpayOrderID, &p.RazorpayPaymentID, &p.RazorpaySignature, &p.ServiceOrderID,
		&p.OrderNumber, &p.ClientName, &p.Amount, &p.Status, &p.FailureReason, &p.CreatedAt, &p.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *OnlinePaymentRepository) ListByServiceOrder(ctx context.Context, serviceOrderID string) ([]*models.OnlinePayment, error) {
	rows, err := r.DB.Query(ctx, onlinePaymentSelect+" WHERE service_order_id = $1 ORDER BY created_at DESC", serviceOrderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.OnlinePayment
	for rows.Next() {
		p := &models.OnlinePayment{}
		err := rows.Scan(
			&p.ID, &p.RazorpayOrderID, &p.RazorpayPaymentID, &p.RazorpaySignature, &p.ServiceOrderID,
			&p.OrderNumber, &p.ClientName, &p.Amount, &p.Status, &p.FailureReason, &p.CreatedAt, &p.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *OnlinePaymentRepository) MarkSuccess(ctx context.Context, razorpayOrderID, paymentID, signature string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE online_payments
		SET status = 'success', razorpay_payment_id = $2, razorpay_signature = $3, completed_at = NOW()
		WHERE razorpay_order_id = $1
	`, razorpayOrderID, paymentID, signature)
	return err
}

func (r *OnlinePaymentRepository) MarkFailed(ctx context.Context, razorpayOrderID, reason string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE online_payments
		SET status = 'failed', failure_reason = $2, completed_at = NOW()
		WHERE razorpay_order_id = $1
	`, razorpayOrderID, reason)
	return err
}
