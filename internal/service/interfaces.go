package service

import (
	"context"
	"io"
	"time"

	"foodigo/internal/auth"
	"foodigo/internal/domain"
)

type FoodRepository interface {
	CreateFood(ctx context.Context, food *domain.Food) error
	ListFoods(ctx context.Context) ([]domain.Food, error)
	GetFood(ctx context.Context, id string) (*domain.Food, error)
	DeleteFood(ctx context.Context, id string) (int64, error)
	UpdateFoodStock(ctx context.Context, id string, stock int) (int64, error)
	UpdateFoodDetails(ctx context.Context, id string, details FoodDetails) (int64, error)
	ListLowStock(ctx context.Context, threshold int) ([]domain.Food, error)
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	CategoryNameExists(ctx context.Context, name string) (bool, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) (int64, error)
	DeleteCategory(ctx context.Context, id string) (int64, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserSummaries(ctx context.Context, ids []string) (map[string]domain.UserSummary, error)
	SaveCart(ctx context.Context, userID string, cart map[string]int) (int64, error)
	ClearCart(ctx context.Context, userID string) (int64, error)
	SaveFavorites(ctx context.Context, userID string, favorites []string) (int64, error)
	CreateAdmin(ctx context.Context, admin *domain.Admin) error
	GetAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	SetPaymentRef(ctx context.Context, id, ref string) error
	MarkPaid(ctx context.Context, id string) (int64, error)
	ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (int64, error)
	MarkOrderSeen(ctx context.Context, id string) (int64, error)
	CountNewOrders(ctx context.Context) (int, error)
	DeleteOrder(ctx context.Context, id string) (int64, error)
	DeleteUnpaidBefore(ctx context.Context, cutoff time.Time) (int64, error)
	ListOrderItems(ctx context.Context) ([][]domain.OrderItem, error)
}

type ScheduleRepository interface {
	CreateSchedule(ctx context.Context, schedule *domain.Schedule) error
	GetSchedule(ctx context.Context, id string) (*domain.Schedule, error)
	ListUserSchedules(ctx context.Context, userID string) ([]domain.Schedule, error)
	ListSchedules(ctx context.Context) ([]domain.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule *domain.Schedule) (int64, error)
	// An empty userID matches any owner.
	SetScheduleActive(ctx context.Context, id, userID string, active bool) (int64, error)
	DeleteSchedule(ctx context.Context, id, userID string) (int64, error)
	ListDueSchedules(ctx context.Context, now time.Time) ([]domain.Schedule, error)
	AdvanceSchedule(ctx context.Context, id string, next time.Time) error
	ListScheduleItems(ctx context.Context) ([][]domain.OrderItem, error)
}

type ReviewRepository interface {
	InsertReview(ctx context.Context, review *domain.Review) error
	ListFoodReviews(ctx context.Context, foodID string) ([]domain.Review, error)
	FoodStats(ctx context.Context, foodID string) (*domain.FoodStats, error)
}

type ReviewCache interface {
	ReviewMarkerKey(foodID, userID string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
	FoodStats(ctx context.Context, foodID string) (*domain.FoodStats, error)
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, message *domain.Message) error
	ListUserMessages(ctx context.Context, userID string) ([]domain.Message, error)
	ListMessages(ctx context.Context) ([]domain.Message, error)
	CountUnreadMessages(ctx context.Context) (int, error)
	MarkMessageRead(ctx context.Context, id string) (int64, error)
	AddReply(ctx context.Context, id string, reply domain.Reply) (int64, error)
	DeleteMessage(ctx context.Context, id string) (int64, error)
}

// StatsStore keeps the derived aggregates the worker maintains.
type StatsStore interface {
	UpdateFoodRating(ctx context.Context, foodID string) error
	DecrementStock(ctx context.Context, items []domain.OrderItem) error
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, items []domain.LineItem, successURL, cancelURL string) (*domain.CheckoutSession, error)
	CreateCustomer(ctx context.Context, paymentMethodID, email string) (string, error)
	ChargeSaved(ctx context.Context, customerID, paymentMethodID string, amountCents int64) (string, error)
	Refund(ctx context.Context, ref string) error
	CheckoutPaid(ctx context.Context, sessionID string) (bool, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, html string, attachments ...domain.Attachment) error
}

type ReceiptRenderer interface {
	Render(order *domain.Order, customerName string, qr []byte) ([]byte, error)
	EmailBody(order *domain.Order, customerName string) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type ImageStore interface {
	Save(filename string, body io.Reader) (string, error)
	Remove(name string) error
}

type TokenIssuer interface {
	Issue(id string, role auth.Role) (string, error)
}

type AccountServiceInterface interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	AdminLogin(ctx context.Context, email, password string) (string, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type CatalogServiceInterface interface {
	AddFood(ctx context.Context, food *domain.Food, image Upload) error
	ListFoods(ctx context.Context) ([]domain.Food, error)
	RemoveFood(ctx context.Context, id string) error
	UpdateStock(ctx context.Context, id string, stock int) (*domain.Food, error)
	UpdateDetails(ctx context.Context, id string, details FoodDetails) (*domain.Food, error)
	LowStock(ctx context.Context) ([]domain.Food, error)

	AddCategory(ctx context.Context, category *domain.Category, image Upload) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category, image *Upload) (*domain.Category, error)
	RemoveCategory(ctx context.Context, id string) error
}

type CartServiceInterface interface {
	Add(ctx context.Context, userID, itemID string) (map[string]int, error)
	Remove(ctx context.Context, userID, itemID string) (map[string]int, error)
	Get(ctx context.Context, userID string) (map[string]int, error)
}

type FavoritesServiceInterface interface {
	Toggle(ctx context.Context, userID, itemID string) (string, error)
	Get(ctx context.Context, userID string) ([]string, error)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, userID string, items []domain.OrderItem, address domain.Address) (string, error)
	Verify(ctx context.Context, orderID string, success bool) (*Receipt, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	OverrideStatus(ctx context.Context, orderID, status string) error
	MarkSeen(ctx context.Context, orderID string) (*domain.Order, error)
	CountNew(ctx context.Context) (int, error)
	Cancel(ctx context.Context, userID, orderID string) (domain.CancelDecision, error)
	AdminRemove(ctx context.Context, orderID string) error
	QRCode(ctx context.Context, orderID string) ([]byte, error)
	SweepAbandoned(ctx context.Context, ttl time.Duration) (int64, error)
}

type ScheduleServiceInterface interface {
	Create(ctx context.Context, userID string, in ScheduleInput) (*domain.Schedule, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Schedule, error)
	List(ctx context.Context) ([]domain.ScheduleOwner, error)
	Update(ctx context.Context, userID, id string, upd ScheduleUpdate) (*domain.Schedule, error)
	Toggle(ctx context.Context, userID, id string, active bool) error
	AdminToggle(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, userID, id string) error
	AdminDelete(ctx context.Context, id string) error
	TopSelling(ctx context.Context) ([]domain.TopSellingItem, error)
	MaterializeDue(ctx context.Context) (int, error)
}

type ReviewServiceInterface interface {
	Add(ctx context.Context, review *domain.Review) error
	List(ctx context.Context, foodID string) ([]domain.Review, error)
	Stats(ctx context.Context, foodID string) (*domain.FoodStats, error)
}

type MessageServiceInterface interface {
	Send(ctx context.Context, message *domain.Message) error
	ListForUser(ctx context.Context, userID string) ([]domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
	CountUnread(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	Reply(ctx context.Context, adminID, id, text string) error
	Delete(ctx context.Context, id string) error
}
