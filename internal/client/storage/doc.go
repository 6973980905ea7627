// Package storage provides the client's key/value stores.
//
// SQLiteStore is the device-persistent store: it keeps the bearer credential
// and the visitor identifier across restarts. MemoryStore lives for a single
// run and backs session-scoped flags such as the onboarding prompt marker.
//
// Both satisfy Store. Get reports a missing key with ok == false and a nil
// error.
package storage
