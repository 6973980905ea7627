package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
)

type LikesAPI interface {
	ToggleLike(ctx context.Context, req models.LikeRequest) (models.LikeResult, error)
}

// LikeService toggles likes for the anonymous visitor. The returned state
// is the server's; callers update their projections only from it. A
// rejected credential signs the user out and yields ErrLoginRequired.
type LikeService interface {
	Toggle(ctx context.Context, productID models.ID) (bool, error)
}

type likeService struct {
	api       LikesAPI
	visitorID string
	session   Session
}

func NewLikeService(api LikesAPI, visitorID string, s Session) LikeService {
	return &likeService{api: api, visitorID: visitorID, session: s}
}

func (s *likeService) Toggle(ctx context.Context, productID models.ID) (bool, error) {
	if productID == "" {
		return false, fmt.Errorf("toggle like: product id is empty: %w", ErrInvalidInput)
	}
	res, err := s.api.ToggleLike(ctx, models.LikeRequest{Product: productID, VisitorID: s.visitorID})
	if err != nil {
		return false, fmt.Errorf("toggle like %s: %w", productID, authFailure(ctx, s.session, err))
	}
	return res.Liked, nil
}
