// Package cli provides the interactive storefront terminal client.
//
// It wires configuration, local storage, the REST client, the session
// controller and the page services, then runs a REPL. Typical flow: restore
// the session from the stored credential, start the one-time login prompt,
// and execute user commands until exit.
//
// Key features:
//   - Browse: home, products (tabs and search), product detail, brands, ads
//   - Engage: like, order, review, contact, call
//   - Account: login (with the phone step), profile, whoami, logout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See NewApp and runREPL for details.
package cli
