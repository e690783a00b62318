package policies

import (
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/model/order"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/errs"
)

// OrderAction names an action an actor may attempt on an order.
type OrderAction string

const (
	ViewOrder     OrderAction = "view"
	ChatOrder     OrderAction = "chat on"
	PayOrder      OrderAction = "pay for"
	AcceptOrder   OrderAction = "accept"
	DownloadOrder OrderAction = "download"
	VerifyPayment OrderAction = "verify payment of"
	StartWork     OrderAction = "start work on"
	DeliverOrder  OrderAction = "deliver"
	CompleteOrder OrderAction = "complete"
	CancelOrder   OrderAction = "cancel"
)

func isCustomer(actor user.Actor, o *order.Order) bool {
	return actor.Validate() == nil && o.Validate() == nil && o.IsCustomer(actor.ID())
}

func isWorker(actor user.Actor, o *order.Order) bool {
	return actor.Validate() == nil && o.Validate() == nil && o.IsWorker(actor.ID())
}

// CanView: the order's customer or worker.
func CanView(actor user.Actor, o *order.Order) bool {
	return isCustomer(actor, o) || isWorker(actor, o)
}

// CanChat: the same parties as CanView.
func CanChat(actor user.Actor, o *order.Order) bool {
	return CanView(actor, o)
}

func CanPay(actor user.Actor, o *order.Order) bool {
	return isCustomer(actor, o) && o.Status() == order.PendingPayment
}

func CanAccept(actor user.Actor, o *order.Order) bool {
	return isCustomer(actor, o) && o.Status() == order.Delivered
}

func CanDownload(actor user.Actor, o *order.Order) bool {
	return isCustomer(actor, o) && o.CanDownloadDigitalProduct()
}

func CanVerifyPayment(actor user.Actor, o *order.Order) bool {
	return isWorker(actor, o) && o.Status() == order.PaymentSubmitted
}

func CanStartWork(actor user.Actor, o *order.Order) bool {
	return isWorker(actor, o) && o.Status() == order.PaymentReceived
}

func CanDeliver(actor user.Actor, o *order.Order) bool {
	if !isWorker(actor, o) {
		return false
	}
	return o.Status() == order.PaymentReceived || o.Status() == order.InProgress
}

// CanComplete lets the worker close a paid digital product order directly.
func CanComplete(actor user.Actor, o *order.Order) bool {
	return isWorker(actor, o) &&
		o.ListingType() == listing.DigitalProduct &&
		o.Status() == order.PaymentReceived
}

// CanCancel: the customer before paying, the worker until the payment is
// verified.
func CanCancel(actor user.Actor, o *order.Order) bool {
	switch {
	case isCustomer(actor, o):
		return o.Status() == order.PendingPayment
	case isWorker(actor, o):
		return o.Status() == order.PendingPayment || o.Status() == order.PaymentSubmitted
	default:
		return false
	}
}

var orderPredicates = map[OrderAction]func(user.Actor, *order.Order) bool{
	ViewOrder:     CanView,
	ChatOrder:     CanChat,
	PayOrder:      CanPay,
	AcceptOrder:   CanAccept,
	DownloadOrder: CanDownload,
	VerifyPayment: CanVerifyPayment,
	StartWork:     CanStartWork,
	DeliverOrder:  CanDeliver,
	CompleteOrder: CanComplete,
	CancelOrder:   CanCancel,
}

// AuthorizeOrder returns an *errs.UnauthorizedActionError unless the policy
// for action allows actor on o. Unknown actions are denied.
func AuthorizeOrder(actor user.Actor, action OrderAction, o *order.Order) error {
	if allowed, ok := orderPredicates[action]; ok && allowed(actor, o) {
		return nil
	}
	return errs.NewUnauthorizedActionError(actor.String(), string(action), "order "+orderRef(o))
}

func orderRef(o *order.Order) string {
	if o.Validate() != nil {
		return "<invalid>"
	}
	return o.ID().String()
}
