package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
	"github.com/dmitrijs2005/harifurniture/internal/client/services"
	"github.com/dmitrijs2005/harifurniture/internal/client/view"
)

// Home prints the current advertisement, the featured products and the
// brand strip.
func (a *App) Home(ctx context.Context) error {
	if err := a.loadCarousel(ctx); err != nil {
		return err
	}
	if ad := a.renderer.Advertisement(a.carousel, a.now()); ad != "" {
		printlnFn(ad)
		printlnFn()
	}

	page, err := a.catalog.Home(ctx)
	if err != nil {
		a.notifyFailure(err, "Failed to load products")
		return err
	}
	printlnFn(a.renderer.Title("Featured Products"))
	printlnFn(a.renderer.ProductList(page.Featured, page.Offers, page.Reviews, page.Liked.Has))

	brands, err := a.catalog.Brands(ctx)
	if err != nil {
		a.logger.Warn(ctx, "brands fetch failed", "error", err)
		return nil
	}
	if len(brands) > 0 {
		printlnFn()
		printlnFn(a.renderer.Brands(brands))
	}
	return nil
}

// Products prints one tab of the products page. The first argument picks
// the tab when it names one; the rest is the search query.
func (a *App) Products(ctx context.Context, args []string) error {
	tab := services.TabAll
	if len(args) > 0 {
		if t, err := services.ParseTab(args[0]); err == nil {
			tab, args = t, args[1:]
		}
	}
	query := strings.Join(args, " ")

	page, err := a.catalog.Products(ctx)
	if err != nil {
		a.notifyFailure(err, "Failed to load products")
		return err
	}
	a.products = page

	counts := make([]string, 0, len(services.Tabs))
	for _, t := range services.Tabs {
		label := fmt.Sprintf("%s (%d)", t, page.Count(t))
		if t == tab {
			label = "[" + label + "]"
		}
		counts = append(counts, label)
	}
	printlnFn(strings.Join(counts, "  "))
	if query != "" {
		printlnFn(fmt.Sprintf("Search: %q", query))
	}
	printlnFn()

	if tab == services.TabCategory {
		groups := page.CategoryGroups(query)
		if len(groups) == 0 {
			printlnFn("No products found")
			return nil
		}
		for _, g := range groups {
			printlnFn(a.renderer.Title(g.Category.Name))
			printlnFn(a.renderer.ProductList(g.Products, page.Offers, page.Reviews, page.Liked.Has))
		}
		return nil
	}

	list := page.List(tab, query)
	if len(list) == 0 {
		if tab == services.TabLiked && query == "" {
			printlnFn("No liked products yet")
		} else {
			printlnFn("No products found")
		}
		return nil
	}
	printlnFn(a.renderer.ProductList(list, page.Offers, page.Reviews, page.Liked.Has))
	return nil
}

// Product prints the detail view of one product.
func (a *App) Product(ctx context.Context, id string) error {
	page, err := a.catalog.ProductDetail(ctx, models.ID(id))
	if err != nil {
		a.notifyFailure(err, "Product not found")
		return err
	}
	printlnFn(a.renderer.ProductDetail(page.Product, page.Offer, page.Reviews, page.Liked))
	return nil
}

func (a *App) Brands(ctx context.Context) error {
	brands, err := a.catalog.Brands(ctx)
	if err != nil {
		a.notifyFailure(err, "Failed to load brands")
		return err
	}
	if len(brands) == 0 {
		printlnFn("No brands yet")
		return nil
	}
	printlnFn(a.renderer.Brands(brands))
	return nil
}

// Ads prints the advertisement currently showing. "ads n" jumps to the
// n-th one.
func (a *App) Ads(ctx context.Context, args []string) error {
	if err := a.loadCarousel(ctx); err != nil {
		return err
	}
	if a.carousel == nil || a.carousel.Len() == 0 {
		printlnFn("No advertisements right now")
		return nil
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > a.carousel.Len() {
			a.notifyError(fmt.Sprintf("Pick an advertisement between 1 and %d", a.carousel.Len()))
			return services.ErrInvalidInput
		}
		a.carousel.Select(n-1, a.now())
	}
	printlnFn(a.renderer.Advertisement(a.carousel, a.now()))
	return nil
}

func (a *App) Call(_ context.Context) error {
	printlnFn(a.renderer.CallOptions())
	return nil
}

// loadCarousel fetches active advertisements once per run. A failed fetch
// leaves the carousel empty and is retried next time.
func (a *App) loadCarousel(ctx context.Context) error {
	if a.carousel != nil {
		return nil
	}
	ads, err := a.catalog.Advertisements(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		a.logger.Warn(ctx, "advertisements fetch failed", "error", err)
		return nil
	}
	a.carousel = view.NewAdCarousel(ads, a.started)
	return nil
}
