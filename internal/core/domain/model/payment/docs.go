// Package payment models proof-of-payment uploads and their manual
// verification by the worker.
package payment
