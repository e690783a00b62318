package queries

import (
	"context"

	"kayakoyan/internal/core/domain/model/order"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetWorkerStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetWorkerStatsQueryHandler(db *gorm.DB) GetWorkerStatsQueryHandler {
	return GetWorkerStatsQueryHandler{db: db}
}

func (h GetWorkerStatsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerStatsQuery,
) (GetWorkerStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkerStatsQueryResponse{}, err
	}

	actor := query.Actor()
	allowed := actor.Role() == user.Admin || (actor.Role() == user.Worker && actor.Is(query.WorkerID()))
	if !allowed {
		return GetWorkerStatsQueryResponse{}, errs.NewUnauthorizedActionError(
			actor.String(), "view stats of", "worker "+query.WorkerID().String(),
		)
	}

	resp := GetWorkerStatsQueryResponse{
		WorkerID:       query.WorkerID(),
		OrdersByStatus: make(map[string]int64, len(order.AllStatuses())),
		Revenue:        decimal.Zero,
	}
	for _, s := range order.AllStatuses() {
		resp.OrdersByStatus[s.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(total_price), 0)
		FROM orders
		WHERE worker_id = ?
		GROUP BY status
	`, query.WorkerID().Bytes()).Rows()
	if err != nil {
		return GetWorkerStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status int
			count  int64
			total  decimal.Decimal
		)
		if err = rows.Scan(&status, &count, &total); err != nil {
			return GetWorkerStatsQueryResponse{}, err
		}

		s := order.Status(status)
		if err = s.Validate(); err != nil {
			return GetWorkerStatsQueryResponse{}, err
		}
		resp.OrdersByStatus[s.String()] = count
		if s.IsActive() {
			resp.ActiveOrders += count
		}
		if s == order.Completed {
			resp.Revenue = total
		}
	}

	if err = rows.Err(); err != nil {
		return GetWorkerStatsQueryResponse{}, err
	}

	return resp, nil
}
