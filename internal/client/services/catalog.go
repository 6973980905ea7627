package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
	"github.com/dmitrijs2005/harifurniture/internal/logging"
	"golang.org/x/sync/errgroup"
)

// reviewFetchLimit bounds concurrent review-summary requests per page.
const reviewFetchLimit = 4

// CatalogAPI is the read side of the REST API.
type CatalogAPI interface {
	Products(ctx context.Context) ([]models.Product, error)
	FeaturedProducts(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id models.ID) (*models.Product, error)
	ActiveOffers(ctx context.Context) ([]models.Offer, error)
	Categories(ctx context.Context) ([]models.Category, error)
	ProductReviews(ctx context.Context, productID models.ID) (*models.ReviewSummary, error)
	LikedProductIDs(ctx context.Context, visitorID string) ([]models.ID, error)
	VisitorLikes(ctx context.Context, visitorID string) ([]models.Like, error)
	Brands(ctx context.Context) ([]models.Brand, error)
	ActiveAdvertisements(ctx context.Context) ([]models.Advertisement, error)
}

// CatalogService loads the read-only pages.
//
// Contract:
//   - Home and Products fetch their parts concurrently. A failed part is
//     logged and left empty; only cancellation of ctx fails the page.
//   - ProductDetail fails when the product itself cannot be loaded; the
//     other parts degrade like Home.
//   - Brands and Advertisements return the API error unchanged.
type CatalogService interface {
	Home(ctx context.Context) (*HomePage, error)
	Products(ctx context.Context) (*ProductsPage, error)
	ProductDetail(ctx context.Context, id models.ID) (*ProductDetailPage, error)
	Brands(ctx context.Context) ([]models.Brand, error)
	Advertisements(ctx context.Context) ([]models.Advertisement, error)
}

type catalogService struct {
	api       CatalogAPI
	visitorID string
	logger    logging.Logger
}

func NewCatalogService(api CatalogAPI, visitorID string, logger logging.Logger) CatalogService {
	return &catalogService{api: api, visitorID: visitorID, logger: logger.With("service", "catalog")}
}

type HomePage struct {
	Featured []models.Product
	Offers   []models.Offer
	Liked    LikedSet
	Reviews  map[models.ID]models.ReviewSummary
}

func (s *catalogService) Home(ctx context.Context) (*HomePage, error) {
	page := &HomePage{Liked: LikedSet{}, Reviews: map[models.ID]models.ReviewSummary{}}
	var g errgroup.Group

	g.Go(func() error {
		products, err := s.api.FeaturedProducts(ctx)
		if err != nil {
			s.logger.Warn(ctx, "featured products fetch failed", "error", err)
			return nil
		}
		page.Featured = products
		page.Reviews = s.reviewSummaries(ctx, products)
		return nil
	})
	g.Go(func() error {
		page.Offers = s.activeOffers(ctx)
		return nil
	})
	g.Go(func() error {
		page.Liked = s.likedSet(ctx)
		return nil
	})

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load home: %w", err)
	}
	return page, nil
}

func (s *catalogService) Products(ctx context.Context) (*ProductsPage, error) {
	page := &ProductsPage{Liked: LikedSet{}, Reviews: map[models.ID]models.ReviewSummary{}}
	var g errgroup.Group

	g.Go(func() error {
		products, err := s.api.Products(ctx)
		if err != nil {
			s.logger.Warn(ctx, "products fetch failed", "error", err)
			return nil
		}
		page.Products = products
		page.Reviews = s.reviewSummaries(ctx, products)
		return nil
	})
	g.Go(func() error {
		page.Offers = s.activeOffers(ctx)
		return nil
	})
	g.Go(func() error {
		categories, err := s.api.Categories(ctx)
		if err != nil {
			s.logger.Warn(ctx, "categories fetch failed", "error", err)
			return nil
		}
		page.Categories = categories
		return nil
	})
	g.Go(func() error {
		page.Liked = s.likedSet(ctx)
		return nil
	})
	g.Go(func() error {
		likes, err := s.api.VisitorLikes(ctx, s.visitorID)
		if err != nil {
			s.logger.Warn(ctx, "visitor likes fetch failed", "error", err)
			return nil
		}
		for _, l := range likes {
			if l.Product.Product != nil {
				page.LikedProducts = append(page.LikedProducts, *l.Product.Product)
			}
		}
		return nil
	})

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return page, nil
}

type ProductDetailPage struct {
	Product models.Product
	Offer   *models.Offer
	Reviews models.ReviewSummary
	Liked   bool
}

// DisplayPrice is the unit price the customer pays.
func (p *ProductDetailPage) DisplayPrice() float64 {
	return models.DisplayPrice(p.Product, p.Offer)
}

func (s *catalogService) ProductDetail(ctx context.Context, id models.ID) (*ProductDetailPage, error) {
	page := &ProductDetailPage{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		product, err := s.api.Product(gctx, id)
		if err != nil {
			return fmt.Errorf("load product %s: %w", id, err)
		}
		page.Product = *product
		return nil
	})
	g.Go(func() error {
		summary, err := s.api.ProductReviews(gctx, id)
		if err != nil {
			s.logger.Warn(ctx, "reviews fetch failed", "product", id, "error", err)
			return nil
		}
		page.Reviews = *summary
		return nil
	})
	g.Go(func() error {
		if o, ok := models.FindOffer(s.activeOffers(gctx), id); ok {
			page.Offer = o
		}
		return nil
	})
	g.Go(func() error {
		page.Liked = s.likedSet(gctx).Has(id)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *catalogService) Brands(ctx context.Context) ([]models.Brand, error) {
	brands, err := s.api.Brands(ctx)
	if err != nil {
		return nil, fmt.Errorf("load brands: %w", err)
	}
	return brands, nil
}

func (s *catalogService) Advertisements(ctx context.Context) ([]models.Advertisement, error) {
	ads, err := s.api.ActiveAdvertisements(ctx)
	if err != nil {
		return nil, fmt.Errorf("load advertisements: %w", err)
	}
	return ads, nil
}

func (s *catalogService) activeOffers(ctx context.Context) []models.Offer {
	offers, err := s.api.ActiveOffers(ctx)
	if err != nil {
		s.logger.Warn(ctx, "offers fetch failed", "error", err)
		return nil
	}
	return offers
}

func (s *catalogService) likedSet(ctx context.Context) LikedSet {
	ids, err := s.api.LikedProductIDs(ctx, s.visitorID)
	if err != nil {
		s.logger.Warn(ctx, "liked ids fetch failed", "error", err)
		return LikedSet{}
	}
	return NewLikedSet(ids)
}

// reviewSummaries fetches one summary per product. Products whose summary
// fails to load are missing from the result.
func (s *catalogService) reviewSummaries(ctx context.Context, products []models.Product) map[models.ID]models.ReviewSummary {
	var (
		mu  sync.Mutex
		out = make(map[models.ID]models.ReviewSummary, len(products))
		g   errgroup.Group
	)
	g.SetLimit(reviewFetchLimit)
	for _, p := range products {
		g.Go(func() error {
			summary, err := s.api.ProductReviews(ctx, p.ID)
			if err != nil {
				s.logger.Warn(ctx, "reviews fetch failed", "product", p.ID, "error", err)
				return nil
			}
			mu.Lock()
			out[p.ID] = *summary
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}
