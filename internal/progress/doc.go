package progress

// Package progress computes how far the current calendar year has elapsed.
// The computation is pure date arithmetic with no state; the controller calls
// it on every refresh tick and pushes the result to the UI.
