package http

import "time"

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type NewListing struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Images      []string `json:"images"`
	FilePath    string   `json:"file_path"`
}

type NewOrder struct {
	ListingID string `json:"listing_id"`
}

type NewPayment struct {
	Method          string `json:"method"`
	ProofPath       string `json:"proof_path"`
	ReferenceNumber string `json:"reference_number"`
}

type PaymentReview struct {
	Approve bool `json:"approve"`
}

type NewDelivery struct {
	Notes string   `json:"notes"`
	Files []string `json:"files"`
}

type NewMessage struct {
	Type       string `json:"type"`
	Body       string `json:"body"`
	Attachment string `json:"attachment"`
}

type Payment struct {
	ID              string    `json:"id"`
	Method          string    `json:"method"`
	Amount          string    `json:"amount"`
	ReferenceNumber string    `json:"reference_number,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type Delivery struct {
	ID        string    `json:"id"`
	Notes     string    `json:"notes,omitempty"`
	Files     []string  `json:"files"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customer_id"`
	WorkerID     string     `json:"worker_id"`
	ListingID    string     `json:"listing_id"`
	ListingType  string     `json:"listing_type"`
	Status       string     `json:"status"`
	NextStatuses []string   `json:"next_statuses"`
	TotalPrice   string     `json:"total_price"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Payment      *Payment   `json:"payment,omitempty"`
	Delivery     *Delivery  `json:"delivery,omitempty"`
}

type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	Type       string    `json:"type"`
	Body       string    `json:"body,omitempty"`
	Attachment string    `json:"attachment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Download struct {
	ListingID string `json:"listing_id"`
	Title     string `json:"title"`
	FilePath  string `json:"file_path"`
}

type WorkerStats struct {
	WorkerID       string           `json:"worker_id"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	ActiveOrders   int64            `json:"active_orders"`
	Revenue        string           `json:"revenue"`
}
