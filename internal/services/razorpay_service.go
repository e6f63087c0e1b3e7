package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"carwash-backend/internal/cache"
	"carwash-backend/internal/models"
	"carwash-backend/internal/repositories"
	"carwash-backend/internal/timeutil"
)

// RazorpayService handles online checkout for service orders. The feature is
// gated by the online_payment_enabled system setting; credentials come from
// configuration.
type RazorpayService struct {
	paymentRepo *repositories.OnlinePaymentRepository
	orderRepo   *repositories.ServiceOrderRepository
	txRepo      *repositories.TransactionRepository
	settingRepo *repositories.SystemSettingRepository

	keyID         string
	keySecret     string
	webhookSecret string
}

func NewRazorpayService(
	keyID, keySecret, webhookSecret string,
	paymentRepo *repositories.OnlinePaymentRepository,
	orderRepo *repositories.ServiceOrderRepository,
	txRepo *repositories.TransactionRepository,
	settingRepo *repositories.SystemSettingRepository,
) *RazorpayService {
	return &RazorpayService{
		paymentRepo:   paymentRepo,
		orderRepo:     orderRepo,
		txRepo:        txRepo,
		settingRepo:   settingRepo,
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
	}
}

func (s *RazorpayService) IsEnabled(ctx context.Context) bool {
	return s.settingRepo.GetValue(ctx, models.SettingOnlinePayments, "false") == "true"
}

func (s *RazorpayService) client() *razorpay.Client {
	if s.keyID == "" || s.keySecret == "" {
		return nil
	}
	return razorpay.NewClient(s.keyID, s.keySecret)
}

// CreateOrder creates a Razorpay order for a service order's total and
// records a pending payment attempt.
func (s *RazorpayService) CreateOrder(ctx context.Context, serviceOrderID string) (*models.CreateOrderResponse, error) {
	if !s.IsEnabled(ctx) {
		return nil, fmt.Errorf("online payments are currently disabled")
	}
	client := s.client()
	if client == nil {
		return nil, fmt.Errorf("razorpay client not configured")
	}

	order, err := s.orderRepo.Get(ctx, serviceOrderID)
	if err != nil {
		return nil, fmt.Errorf("service order not found: %w", err)
	}
	if order.Total <= 0 {
		return nil, fmt.Errorf("service order has no amount due")
	}

	amountCentavos := int(order.Total * 100)
	orderData := map[string]interface{}{
		"amount":   amountCentavos,
		"currency": "BRL",
		"receipt":  fmt.Sprintf("rcpt_%s_%d", order.OrderNumber, timeutil.Now().Unix()),
		"notes": map[string]interface{}{
			"service_order_id": order.ID,
			"order_number":     order.OrderNumber,
		},
	}
	rzpOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}
	rzpOrderID := rzpOrder["id"].(string)

	payment := &models.OnlinePayment{
		RazorpayOrderID: rzpOrderID,
		ServiceOrderID:  order.ID,
		OrderNumber:     order.OrderNumber,
		ClientName:      order.ClientName,
		Amount:          order.Total,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to store payment attempt: %w", err)
	}

	return &models.CreateOrderResponse{
		OrderID:     rzpOrderID,
		Amount:      amountCentavos,
		Currency:    "BRL",
		KeyID:       s.keyID,
		ClientName:  order.ClientName,
		OrderNumber: order.OrderNumber,
		Total:       order.Total,
	}, nil
}

// VerifyPayment checks the checkout callback signature. A valid signature
// marks the payment successful, stamps the order's payment method, and books
// the income in the ledger.
func (s *RazorpayService) VerifyPayment(ctx context.Context, req *models.VerifyPaymentRequest) (*models.OnlinePayment, error) {
	if !s.verifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		_ = s.paymentRepo.MarkFailed(ctx, req.RazorpayOrderID, "invalid signature")
		return nil, fmt.Errorf("invalid payment signature")
	}

	payment, err := s.paymentRepo.GetByRazorpayOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		return nil, fmt.Errorf("payment not found: %w", err)
	}
	if payment.Status == models.OnlinePaymentSuccess {
		return payment, nil
	}

	err = s.paymentRepo.MarkSuccess(ctx, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	_ = s.orderRepo.SetPaymentMethod(ctx, payment.ServiceOrderID, models.PaymentOnline)

	tx := &models.Transaction{
		Type:          models.TransactionIncome,
		Category:      "service_order",
		Description:   fmt.Sprintf("Online payment for order %s", payment.OrderNumber),
		Amount:        payment.Amount,
		PaymentMethod: models.PaymentOnline,
		Date:          timeutil.Today(),
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		// Payment already succeeded; the ledger entry can be re-created by
		// hand, so don't fail the verification.
		return payment, nil
	}
	cache.InvalidateDashboard(ctx)

	return s.paymentRepo.GetByRazorpayOrderID(ctx, req.RazorpayOrderID)
}

func (s *RazorpayService) verifySignature(orderID, paymentID, signature string) bool {
	if s.keySecret == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(s.keySecret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature validates the X-Razorpay-Signature header against
// the raw webhook body.
func (s *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	if s.webhookSecret == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(s.webhookSecret))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
