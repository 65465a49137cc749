package domain

import "time"

type Food struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	AvgRating   float64   `json:"avgRating"`
	ReviewCount int       `json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Category struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

type User struct {
	ID           string         `json:"_id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	CartData     map[string]int `json:"cartData"`
	Favorites    []string       `json:"favorites"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type Admin struct {
	ID           string `json:"_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Address is copied onto every order and schedule so later profile edits do not
// rewrite history.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

type OrderItem struct {
	FoodID   string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

type Order struct {
	ID         string      `json:"_id"`
	UserID     string      `json:"userId"`
	Items      []OrderItem `json:"items"`
	Address    Address     `json:"address"`
	Amount     float64     `json:"amount"`
	Status     OrderStatus `json:"status"`
	Payment    bool        `json:"payment"`
	IsNew      bool        `json:"isNew"`
	PaymentRef string      `json:"-"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

type Schedule struct {
	ID                    string         `json:"_id"`
	UserID                string         `json:"userId"`
	Items                 []OrderItem    `json:"items"`
	Address               Address        `json:"address"`
	Amount                float64        `json:"amount"`
	ScheduleType          ScheduleType   `json:"scheduleType"`
	DeliveryTimestamp     time.Time      `json:"deliveryTimestamp"`
	RecurrenceRule        RecurrenceRule `json:"recurrenceRule"`
	UpdateCutoffHours     int            `json:"updateCutoffHours"`
	IsActive              bool           `json:"isActive"`
	StripePaymentMethodID string         `json:"stripePaymentMethodId"`
	StripeCustomerID      string         `json:"stripeCustomerId"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
}

// ScheduleOwner is the admin view of a schedule with the owner resolved.
type ScheduleOwner struct {
	Schedule
	User *UserSummary `json:"user,omitempty"`
}

type UserSummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Review struct {
	ID        string    `json:"_id"`
	FoodID    string    `json:"foodId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type FoodStats struct {
	FoodID      string  `json:"foodId"`
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int     `json:"reviewCount"`
	LastUpdated int64   `json:"lastUpdated,omitempty"`
}

type Message struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	Replies   []Reply   `json:"replies"`
	Timestamp time.Time `json:"timestamp"`
}

type Reply struct {
	AdminID   string    `json:"adminId"`
	ReplyText string    `json:"replyText"`
	Timestamp time.Time `json:"timestamp"`
}

type TopSellingItem struct {
	FoodID        string  `json:"_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Image         string  `json:"image,omitempty"`
	TotalQuantity int     `json:"totalQuantity"`
}
