// Package chat models the per-order conversation between customer and
// worker, including the system delivery notice.
package chat
