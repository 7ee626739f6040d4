package repositories

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Sarvesh-GanesanW/enterprises/libs"
	"github.com/Sarvesh-GanesanW/enterprises/models"
)

// SubmissionRepository forwards contact and order forms to the backend,
// which stores them and answers 201 with a message body.
type SubmissionRepository struct {
	backend *libs.BackendClient
}

func NewSubmissionRepository(backend *libs.BackendClient) *SubmissionRepository {
	return &SubmissionRepository{backend: backend}
}

func (r *SubmissionRepository) SubmitContact(ctx context.Context, req models.ContactRequest) error {
	if err := r.backend.DoJSON(ctx, http.MethodPost, "/contact", req, nil); err != nil {
		return fmt.Errorf("submit contact form: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) SubmitOrder(ctx context.Context, req models.OrderRequest) error {
	if err := r.backend.DoJSON(ctx, http.MethodPost, "/order", req, nil); err != nil {
		return fmt.Errorf("submit order form: %w", err)
	}
	return nil
}
