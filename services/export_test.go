package services

// SyncRequest exposes the unexported syncRequest type to the external
// services_test package.
type SyncRequest = syncRequest
