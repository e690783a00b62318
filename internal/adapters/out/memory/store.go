// Package memory is an in-process implementation of the unit of work. Use
// case and HTTP tests run the full command pipeline on it without a database.
//
// Transactions are serialised: Begin takes the store lock and holds it until
// Commit or Rollback, and Rollback restores the snapshot taken at Begin.
// Repositories used outside a transaction lock the store per call. Stored
// aggregates are copies; callers never share pointers with the store.
package memory

import (
	"maps"
	"slices"
	"sync"

	"kayakoyan/internal/core/domain/model/chat"
	"kayakoyan/internal/core/domain/model/delivery"
	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/model/notification"
	"kayakoyan/internal/core/domain/model/order"
	"kayakoyan/internal/core/domain/model/payment"
	"kayakoyan/internal/core/domain/model/user"
)

type tables struct {
	users         map[kernel.UUID]*user.User
	listings      map[kernel.UUID]*listing.Listing
	orders        map[kernel.UUID]*order.Order
	payments      []*payment.Payment
	deliveries    map[kernel.UUID]*delivery.Delivery
	messages      []*chat.Message
	notifications []*notification.Notification
}

func (t tables) clone() tables {
	return tables{
		users:         maps.Clone(t.users),
		listings:      maps.Clone(t.listings),
		orders:        maps.Clone(t.orders),
		payments:      slices.Clone(t.payments),
		deliveries:    maps.Clone(t.deliveries),
		messages:      slices.Clone(t.messages),
		notifications: slices.Clone(t.notifications),
	}
}

// Store holds the data shared by all units of work of one factory.
type Store struct {
	mu   sync.Mutex
	data tables
}

func NewStore() *Store {
	return &Store{
		data: tables{
			users:      make(map[kernel.UUID]*user.User),
			listings:   make(map[kernel.UUID]*listing.Listing),
			orders:     make(map[kernel.UUID]*order.Order),
			deliveries: make(map[kernel.UUID]*delivery.Delivery),
		},
	}
}

// The copy helpers rebuild aggregates through their Restore constructors,
// which also drops any recorded events.

func copyOrder(o *order.Order) *order.Order {
	c, err := order.RestoreOrder(
		o.ID(), o.CustomerID(), o.WorkerID(), o.ListingID(),
		o.ListingType(), o.TotalPrice(), o.Status(), o.CreatedAt(), o.CompletedAt(),
	)
	if err != nil {
		panic(err)
	}
	return c
}

func copyListing(l *listing.Listing) *listing.Listing {
	c, err := listing.RestoreListing(
		l.ID(), l.WorkerID(), l.Type(), l.Title(), l.Description(), l.Price(), l.Images(), l.FilePath(),
	)
	if err != nil {
		panic(err)
	}
	return c
}

func copyPayment(p *payment.Payment) *payment.Payment {
	c, err := payment.RestorePayment(
		p.ID(), p.OrderID(), p.Method(), p.Amount(), p.ProofPath(), p.ReferenceNumber(),
		p.Status(), p.CreatedAt(), p.ReviewedAt(),
	)
	if err != nil {
		panic(err)
	}
	return c
}

func copyDelivery(d *delivery.Delivery) *delivery.Delivery {
	c, err := delivery.RestoreDelivery(d.ID(), d.OrderID(), d.Notes(), d.Files(), d.CreatedAt())
	if err != nil {
		panic(err)
	}
	return c
}

func copyMessage(m *chat.Message) *chat.Message {
	c, err := chat.RestoreMessage(m.ID(), m.OrderID(), m.SenderID(), m.Type(), m.Body(), m.Attachment(), m.CreatedAt())
	if err != nil {
		panic(err)
	}
	return c
}

func copyNotification(n *notification.Notification) *notification.Notification {
	c, err := notification.RestoreNotification(
		n.ID(), n.RecipientID(), n.OrderID(), n.Kind(), n.Status(),
		n.Attempts(), n.LastError(), n.CreatedAt(), n.SentAt(),
	)
	if err != nil {
		panic(err)
	}
	return c
}

func copyUser(u *user.User) *user.User {
	c, err := user.RestoreUser(u.ID(), u.Name(), u.Email(), u.PasswordHash(), u.Role())
	if err != nil {
		panic(err)
	}
	return c
}
