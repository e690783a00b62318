// Package notification models the order notifications outbox. Entries are
// fire-and-forget from the point of view of the order lifecycle.
package notification
