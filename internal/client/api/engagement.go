package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
)

func (c *Client) ProductReviews(ctx context.Context, productID models.ID) (*models.ReviewSummary, error) {
	var summary models.ReviewSummary
	if err := c.get(ctx, &summary, nil, "reviews", productID.String()); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) CreateReview(ctx context.Context, review models.ReviewRequest) error {
	return c.send(ctx, http.MethodPost, review, nil, "reviews")
}

// LikedProductIDs lists the ids of products the visitor has liked.
func (c *Client) LikedProductIDs(ctx context.Context, visitorID string) ([]models.ID, error) {
	var ids []models.ID
	q := url.Values{"visitorId": []string{visitorID}}
	if err := c.get(ctx, &ids, q, "likes", "check"); err != nil {
		return nil, err
	}
	return ids, nil
}

// VisitorLikes lists the visitor's likes with populated products.
func (c *Client) VisitorLikes(ctx context.Context, visitorID string) ([]models.Like, error) {
	var likes []models.Like
	if err := c.get(ctx, &likes, nil, "likes", "visitor", visitorID); err != nil {
		return nil, err
	}
	return likes, nil
}

// ToggleLike flips the like state; the result is authoritative.
func (c *Client) ToggleLike(ctx context.Context, req models.LikeRequest) (models.LikeResult, error) {
	var res models.LikeResult
	if err := c.send(ctx, http.MethodPost, req, &res, "likes"); err != nil {
		return models.LikeResult{}, err
	}
	return res, nil
}

func (c *Client) CreateOrder(ctx context.Context, order models.OrderRequest) error {
	return c.send(ctx, http.MethodPost, order, nil, "orders")
}

// CreateQuery submits the contact form.
func (c *Client) CreateQuery(ctx context.Context, query models.QueryRequest) error {
	return c.send(ctx, http.MethodPost, query, nil, "queries")
}
