package models

import "time"

// Online payment statuses
const (
	OnlinePaymentPending = "pending"
	OnlinePaymentSuccess = "success"
	OnlinePaymentFailed  = "failed"
)

// OnlinePayment records a Razorpay payment attempt for a service order.
type OnlinePayment struct {
	ID                string     `json:"id"`
	RazorpayOrderID   string     `json:"razorpay_order_id"`
	RazorpayPaymentID string     `json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string     `json:"-"`
	ServiceOrderID    string     `json:"service_order_id"`
	OrderNumber       string     `json:"order_number"`
	ClientName        string     `json:"client_name"`
	Amount            float64    `json:"amount"`
	Status            string     `json:"status"`
	FailureReason     string     `json:"failure_reason,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

// CreateOnlinePaymentRequest initiates checkout for a service order.
type CreateOnlinePaymentRequest struct {
	ServiceOrderID string `json:"service_order_id"`
}

// CreateOrderResponse is returned to the frontend for Razorpay checkout.
type CreateOrderResponse struct {
	OrderID     string  `json:"order_id"`
	Amount      int     `json:"amount"` // in centavos
	Currency    string  `json:"currency"`
	KeyID       string  `json:"key_id"`
	ClientName  string  `json:"client_name"`
	OrderNumber string  `json:"order_number"`
	Total       float64 `json:"total"`
}

// VerifyPaymentRequest is sent from the frontend after the Razorpay callback.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
