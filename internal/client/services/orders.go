package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
)

type OrdersAPI interface {
	CreateOrder(ctx context.Context, order models.OrderRequest) error
}

type OrderService interface {
	Place(ctx context.Context, productID models.ID, address string, quantity int) error
}

type orderService struct {
	api     OrdersAPI
	session Session
}

func NewOrderService(api OrdersAPI, s Session) OrderService {
	return &orderService{api: api, session: s}
}

// Place submits an order. It returns ErrLoginRequired, with the login modal
// opened, when nobody is signed in or the server rejects the credential.
func (s *orderService) Place(ctx context.Context, productID models.ID, address string, quantity int) error {
	if err := requireUser(s.session); err != nil {
		return err
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("place order: address is required: %w", ErrInvalidInput)
	}
	quantity = max(quantity, 1)

	err := s.api.CreateOrder(ctx, models.OrderRequest{Product: productID, Address: address, Quantity: quantity})
	if err != nil {
		return fmt.Errorf("place order: %w", authFailure(ctx, s.session, err))
	}
	return nil
}

// ParseQuantity reads a quantity field; anything that is not a positive
// integer becomes 1.
func ParseQuantity(s string) int {
	n := 0
	for _, r := range strings.TrimSpace(s) {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > 1_000_000 {
			break
		}
	}
	return max(n, 1)
}
