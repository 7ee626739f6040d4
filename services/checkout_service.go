package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Sarvesh-GanesanW/enterprises/config"
	"github.com/Sarvesh-GanesanW/enterprises/repositories"
	"github.com/Sarvesh-GanesanW/enterprises/utils"
	"github.com/shopspring/decimal"
)

// Checkout states. The flow is linear: Idle → Initiating → AwaitingScan →
// Verifying → Confirmed or Failed. No backward transitions.
const (
	CheckoutIdle         = "idle"
	CheckoutInitiating   = "initiating"
	CheckoutAwaitingScan = "awaiting_scan"
	CheckoutVerifying    = "verifying"
	CheckoutConfirmed    = "confirmed"
	CheckoutFailed       = "failed"
)

var (
	ErrUnsupportedMethod = errors.New("payment method not supported yet")
	ErrNoPendingPayment  = errors.New("no payment awaiting verification")
	ErrPaymentRejected   = errors.New("payment was not accepted by the backend")
)

// CheckoutService drives the payment flow: compute the payable total from
// the cart, initiate payment on the backend, hand back the UPI deep link for
// an external QR layer, and verify on user confirmation.
type CheckoutService struct {
	cart     *CartService
	payments *repositories.PaymentRepository

	mu     sync.Mutex
	status string
	amount decimal.Decimal
}

func NewCheckoutService(cart *CartService, payments *repositories.PaymentRepository) *CheckoutService {
	return &CheckoutService{cart: cart, payments: payments, status: CheckoutIdle}
}

func (s *CheckoutService) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Initiate rejects non-UPI methods, posts {amount, paymentMethod} to the
// backend and, on success, returns the deep link for the current cart total.
// The payee address is used verbatim, as entered.
func (s *CheckoutService) Initiate(ctx context.Context, method, payeeAddress string) (string, decimal.Decimal, error) {
	if method != "upi" {
		return "", decimal.Zero, ErrUnsupportedMethod
	}

	if err := s.cart.Refresh(ctx); err != nil {
		return "", decimal.Zero, err
	}
	total, err := s.cart.Total()
	if err != nil {
		return "", decimal.Zero, err
	}

	s.mu.Lock()
	s.status = CheckoutInitiating
	s.amount = total
	s.mu.Unlock()

	amount, _ := total.Float64()
	ok, err := s.payments.InitiatePayment(ctx, amount, method)
	if err != nil {
		s.setStatus(CheckoutFailed)
		log.Printf("Error initiating payment: %v", err)
		return "", decimal.Zero, err
	}
	if !ok {
		s.setStatus(CheckoutFailed)
		return "", decimal.Zero, ErrPaymentRejected
	}

	cfg := config.AppConfig
	link := utils.BuildUPILink(payeeAddress, cfg.PayeeName, total, cfg.Currency, cfg.TransactionNote)
	s.setStatus(CheckoutAwaitingScan)
	return link, total, nil
}

// Verify posts the pending amount to the verification endpoint. Only valid
// while a payment is awaiting its scan.
func (s *CheckoutService) Verify(ctx context.Context, method string) (decimal.Decimal, error) {
	s.mu.Lock()
	if s.status != CheckoutAwaitingScan {
		s.mu.Unlock()
		return decimal.Zero, ErrNoPendingPayment
	}
	s.status = CheckoutVerifying
	pending := s.amount
	s.mu.Unlock()

	amount, _ := pending.Float64()
	ok, err := s.payments.VerifyPayment(ctx, amount, method)
	if err != nil {
		s.setStatus(CheckoutFailed)
		log.Printf("Error verifying payment: %v", err)
		return decimal.Zero, err
	}
	if !ok {
		s.setStatus(CheckoutFailed)
		return decimal.Zero, fmt.Errorf("verify payment: %w", ErrPaymentRejected)
	}

	s.setStatus(CheckoutConfirmed)
	return pending, nil
}

func (s *CheckoutService) setStatus(status string) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}
