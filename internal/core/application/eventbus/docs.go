// Package eventbus dispatches domain events to handlers synchronously and in
// the order they were subscribed.
//
// Each subscription declares a failure policy:
//
//   - Abort handlers run inside the unit of work transaction, immediately.
//     Their error stops the dispatch and is returned, so the caller rolls the
//     whole transaction back. Events recorded while an Abort handler runs are
//     dispatched before the next handler of the outer event (depth first).
//   - BestEffort handlers are queued and only run by Session.AfterCommit,
//     once the transaction is durable. Their errors are logged and never
//     propagated.
//
// Usage:
//
//	session := dispatcher.NewSession(uow)
//	// ... repository operations that record events
//	if err := session.Flush(ctx); err != nil {
//	    return err // caller rolls back
//	}
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
//	session.AfterCommit(ctx)
package eventbus
