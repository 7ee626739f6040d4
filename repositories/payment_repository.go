package repositories

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Sarvesh-GanesanW/enterprises/libs"
)

type paymentPayload struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

type paymentResult struct {
	Success bool `json:"success"`
}

type PaymentRepository struct {
	backend *libs.BackendClient
}

func NewPaymentRepository(backend *libs.BackendClient) *PaymentRepository {
	return &PaymentRepository{backend: backend}
}

func (r *PaymentRepository) InitiatePayment(ctx context.Context, amount float64, method string) (bool, error) {
	var result paymentResult
	payload := paymentPayload{Amount: amount, PaymentMethod: method}
	if err := r.backend.DoJSON(ctx, http.MethodPost, "/initiate-payment", payload, &result); err != nil {
		return false, fmt.Errorf("initiate payment: %w", err)
	}
	return result.Success, nil
}

func (r *PaymentRepository) VerifyPayment(ctx context.Context, amount float64, method string) (bool, error) {
	var result paymentResult
	payload := paymentPayload{Amount: amount, PaymentMethod: method}
	if err := r.backend.DoJSON(ctx, http.MethodPost, "/verify-payment", payload, &result); err != nil {
		return false, fmt.Errorf("verify payment: %w", err)
	}
	return result.Success, nil
}
