// Package api is the HTTP adapter for the storefront REST API.
//
// # Overview
//
// Client resolves every endpoint against a configurable base URL, encodes
// request bodies as JSON and, when a credential is persisted, sends it as
// "Authorization: Bearer <token>". The token is read from a TokenSource on
// each request, so a login or logout takes effect immediately.
//
// # Error Handling
//
// Failed calls return *Error. Its chain contains exactly one of the sentinel
// kinds, matched with errors.Is:
//
//   - ErrNetwork: the request never got a response (transport failure,
//     cancelled context). The underlying cause stays in the chain.
//   - ErrAuth: 401 or 403; the credential is missing, invalid or expired.
//   - ErrValidation: any other 4xx; Message holds the server's explanation.
//   - ErrServer: 5xx, or a response body that could not be decoded.
//
// Message extracts the server-provided text for user-facing notifications.
// Nothing is retried.
package api
