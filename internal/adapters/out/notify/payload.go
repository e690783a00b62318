package notify

import (
	"kayakoyan/internal/core/domain/model/notification"
)

// TaskDeliverNotification is the asynq task type of a notification.
const TaskDeliverNotification = "notification:deliver"

// Payload is the JSON body of a TaskDeliverNotification task.
type Payload struct {
	NotificationID string `json:"notification_id"`
	RecipientID    string `json:"recipient_id"`
	OrderID        string `json:"order_id"`
	Kind           string `json:"kind"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
}

func newPayload(n *notification.Notification) Payload {
	orderRef := n.OrderID().String()
	return Payload{
		NotificationID: n.ID().String(),
		RecipientID:    n.RecipientID().String(),
		OrderID:        orderRef,
		Kind:           n.Kind().String(),
		Subject:        n.Kind().Subject(),
		Body:           n.Kind().Body(orderRef),
	}
}
