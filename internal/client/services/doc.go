// Package services composes the storefront pages (home, product list,
// product detail, contact) out of REST calls and applies the client-side
// rules around them: who must be signed in, which offer applies, how the
// liked-products projection follows the server.
package services
