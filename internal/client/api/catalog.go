package api

import (
	"context"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
)

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, &products, nil, "products"); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, &products, nil, "products", "featured"); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id models.ID) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, &product, nil, "products", id.String()); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) ActiveOffers(ctx context.Context) ([]models.Offer, error) {
	var offers []models.Offer
	if err := c.get(ctx, &offers, nil, "offers", "active"); err != nil {
		return nil, err
	}
	return offers, nil
}

func (c *Client) Brands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := c.get(ctx, &brands, nil, "brands"); err != nil {
		return nil, err
	}
	return brands, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, &categories, nil, "categories"); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ActiveAdvertisements(ctx context.Context) ([]models.Advertisement, error) {
	var ads []models.Advertisement
	if err := c.get(ctx, &ads, nil, "advertisements", "active"); err != nil {
		return nil, err
	}
	return ads, nil
}
