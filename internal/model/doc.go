package model

// Package model defines domain data structures used across the app: the opaque
// native window handles and the attachment state enum. Structures are designed
// for explicit state transitions owned by a single controller.
