// Package order implements the Order aggregate and its status state machine.
//
// The package includes:
//   - Order: the aggregate root owning the status of a purchase
//   - Status: the closed set of lifecycle states and the transition graph
//   - Created / StatusChanged: domain events picked up by the orchestration layer
//
// Key business rules:
//   - Orders start in PendingPayment
//   - Status moves only along the edges of the transition graph; an illegal
//     move fails with errs.ErrIllegalTransition and changes nothing
//   - Completed and Cancelled are final
//   - Digital products may be downloaded once payment is received, unless
//     the order was cancelled
package order
