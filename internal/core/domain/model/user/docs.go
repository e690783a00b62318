// Package user models marketplace accounts and the Actor value threaded
// through every policy check. Roles are admin, worker and customer.
package user
