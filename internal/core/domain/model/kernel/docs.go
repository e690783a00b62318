// Package kernel provides the value objects shared by every aggregate of the
// marketplace:
//   - UUID: identifier wrapper with validation
//   - Money: non-negative peso amounts backed by shopspring/decimal
//   - DomainEvent / EventRecorder: the event plumbing aggregates use to
//     announce lifecycle changes to the orchestration layer
package kernel
