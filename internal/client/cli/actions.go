package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/harifurniture/internal/client/models"
	"github.com/dmitrijs2005/harifurniture/internal/client/services"
)

// Like toggles the visitor's like on a product. No sign-in is needed.
func (a *App) Like(ctx context.Context, id string) error {
	liked, err := a.likes.Toggle(ctx, models.ID(id))
	if err != nil {
		if errors.Is(err, services.ErrLoginRequired) {
			a.notifyError("Your session has expired")
			a.loginHint()
			return err
		}
		a.notifyFailure(err, "Failed to update")
		return err
	}
	if a.products != nil {
		a.products.ApplyLike(models.ID(id), liked)
	}
	if liked {
		a.notifySuccess("Added to favorites!")
	} else {
		a.notifySuccess("Removed from favorites")
	}
	return nil
}

// Order asks for a delivery address and quantity, shows the total and
// places the order.
func (a *App) Order(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		return a.loginRequired("Please login to place an order")
	}

	page, err := a.catalog.ProductDetail(ctx, models.ID(id))
	if err != nil {
		a.notifyFailure(err, "Product not found")
		return err
	}
	printlnFn(a.renderer.Title("Order " + page.Product.Name))

	address, err := getMultiline(a.reader, "Delivery address", a.out)
	if err != nil {
		return err
	}
	qty, err := getSimpleText(a.reader, "Quantity [1]", a.out)
	if err != nil {
		return err
	}
	quantity := services.ParseQuantity(qty)
	printlnFn(a.renderer.OrderTotal(page.Product, page.Offer, quantity))

	err = a.orders.Place(ctx, page.Product.ID, address, quantity)
	switch {
	case err == nil:
		a.notifySuccess("Order placed successfully!")
	case errors.Is(err, services.ErrLoginRequired):
		a.notifyError("Please login to place an order")
		a.loginHint()
	case errors.Is(err, services.ErrInvalidInput):
		a.notifyError("Please enter a delivery address")
	default:
		a.notifyFailure(err, "Failed to place order")
	}
	return err
}

// Review asks for a rating and comment, submits the review and prints the
// refreshed review list.
func (a *App) Review(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		return a.loginRequired("Please login to write a review")
	}

	raw, err := getSimpleText(a.reader, fmt.Sprintf("Rating %d-%d [%d]", services.MinRating, services.MaxRating, services.MaxRating), a.out)
	if err != nil {
		return err
	}
	rating := services.MaxRating
	if raw != "" {
		rating, err = strconv.Atoi(raw)
		if err != nil || rating < services.MinRating || rating > services.MaxRating {
			a.notifyError(fmt.Sprintf("Rating must be between %d and %d", services.MinRating, services.MaxRating))
			return services.ErrInvalidInput
		}
	}
	comment, err := getMultiline(a.reader, "Your review", a.out)
	if err != nil {
		return err
	}

	summary, err := a.reviews.Submit(ctx, models.ID(id), rating, comment)
	if err != nil {
		if errors.Is(err, services.ErrLoginRequired) {
			a.notifyError("Please login to write a review")
			a.loginHint()
			return err
		}
		a.notifyFailure(err, "Failed to submit review")
		return err
	}
	a.notifySuccess("Review submitted!")
	if summary != nil {
		printlnFn(a.renderer.Reviews(*summary))
	}
	return nil
}

// Contact prints the business details and, for signed-in users, sends a
// message to the store.
func (a *App) Contact(ctx context.Context) error {
	printlnFn(a.renderer.Footer(a.now().Year()))
	printlnFn()

	if !a.isLoggedIn() {
		return a.loginRequired("Please login to send a message")
	}

	def := a.contact.DefaultMobile()
	prompt := "Mobile number"
	if def != "" {
		prompt = fmt.Sprintf("Mobile number [%s]", def)
	}
	mobile, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if mobile == "" && def == "" {
		a.notifyError("Please provide a mobile number")
		return services.ErrInvalidInput
	}
	message, err := getMultiline(a.reader, "Message", a.out)
	if err != nil {
		return err
	}

	err = a.contact.Send(ctx, mobile, message)
	switch {
	case err == nil:
		a.notifySuccess("Message sent successfully!")
	case errors.Is(err, services.ErrLoginRequired):
		a.notifyError("Please login to send a message")
		a.loginHint()
	case errors.Is(err, services.ErrInvalidInput):
		a.notifyError("Please fill in all fields")
	default:
		a.notifyFailure(err, "Failed to send message")
	}
	return err
}

// loginRequired opens the login modal and tells the user to sign in.
func (a *App) loginRequired(msg string) error {
	a.session.SetLoginModalVisible(true)
	a.notifyError(msg)
	a.loginHint()
	return services.ErrLoginRequired
}
