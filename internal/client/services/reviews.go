package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
	"github.com/dmitrijs2005/harifurniture/internal/logging"
)

const (
	MinRating = 1
	MaxRating = 5
)

type ReviewsAPI interface {
	CreateReview(ctx context.Context, review models.ReviewRequest) error
	ProductReviews(ctx context.Context, productID models.ID) (*models.ReviewSummary, error)
}

type ReviewService interface {
	Submit(ctx context.Context, productID models.ID, rating int, comment string) (*models.ReviewSummary, error)
}

type reviewService struct {
	api     ReviewsAPI
	session Session
	logger  logging.Logger
}

func NewReviewService(api ReviewsAPI, s Session, logger logging.Logger) ReviewService {
	return &reviewService{api: api, session: s, logger: logger.With("service", "reviews")}
}

// Submit posts a review and returns the refreshed summary. A nil summary
// with a nil error means the review was stored but the refresh failed.
func (s *reviewService) Submit(ctx context.Context, productID models.ID, rating int, comment string) (*models.ReviewSummary, error) {
	if err := requireUser(s.session); err != nil {
		return nil, err
	}
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("submit review: rating %d out of range: %w", rating, ErrInvalidInput)
	}

	req := models.ReviewRequest{Product: productID, Rating: rating, Comment: strings.TrimSpace(comment)}
	if err := s.api.CreateReview(ctx, req); err != nil {
		return nil, fmt.Errorf("submit review: %w", authFailure(ctx, s.session, err))
	}

	summary, err := s.api.ProductReviews(ctx, productID)
	if err != nil {
		s.logger.Warn(ctx, "review stored but refresh failed", "product", productID, "error", err)
		return nil, nil
	}
	return summary, nil
}
