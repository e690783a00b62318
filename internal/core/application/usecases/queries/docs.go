// Package queries contains read operations. Queries that expose a single
// order load it through the repositories so the order policies can be
// applied to the aggregate; reporting queries use raw SQL.
package queries
