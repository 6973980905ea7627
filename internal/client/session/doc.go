// Package session owns "who is signed in" and which auth-related modal is
// open. A single Controller is created at startup and handed to every
// consumer; only its methods change state.
package session
