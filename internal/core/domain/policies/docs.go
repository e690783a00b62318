// Package policies holds the authorization predicates consulted before every
// mutating action. They are pure functions of an explicit actor and the
// entity acted upon; they never read request state.
//
// Policies and the order state machine are independent guards: a command
// runs only if the policy allows it and the transition is legal.
package policies
