package queries

import (
	"errors"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetWorkerStatsQueryIsNotConstructed = errors.New(
	"GetWorkerStatsQuery must be created via NewGetWorkerStatsQuery constructor",
)

// GetWorkerStatsQuery summarises the orders of one worker for the
// dashboard. Workers see their own numbers, admins anyone's.
type GetWorkerStatsQuery struct {
	actor    user.Actor
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWorkerStatsQuery(actor user.Actor, workerID kernel.UUID) (GetWorkerStatsQuery, error) {
	if err := errors.Join(actor.Validate(), workerID.Validate()); err != nil {
		return GetWorkerStatsQuery{}, err
	}
	return GetWorkerStatsQuery{actor: actor, workerID: workerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetWorkerStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerStatsQueryIsNotConstructed)
}

func (q GetWorkerStatsQuery) Actor() user.Actor     { return q.actor }
func (q GetWorkerStatsQuery) WorkerID() kernel.UUID { return q.workerID }

// GetWorkerStatsQueryResponse has one entry per status name, zero included.
// Revenue sums the totals of completed orders.
type GetWorkerStatsQueryResponse struct {
	WorkerID       kernel.UUID
	OrdersByStatus map[string]int64
	ActiveOrders   int64
	Revenue        decimal.Decimal
}
