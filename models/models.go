package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- Custom JSON Type for database/sql ---

// JSONB allows storing JSON data in a PostgreSQL jsonb column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, &j)
}

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User represents an account in the system (owner or staff).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Branches ---

// Branch is one retail location from the branch roster. Type carries the
// group tag ("next" or "coffemania") used to partition branches for
// segregated reporting.
type Branch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// --- Orders ---

// OrderDocument is the raw order ledger for a date range, keyed
// date -> branch -> product -> quantity. Quantities come back from the
// document store as either numbers or strings (sometimes with a comma
// decimal separator), so the value type stays open.
type OrderDocument map[string]map[string]map[string]interface{}

// Order is a single persisted order row, used by the order-entry screens.
type Order struct {
	ID        string    `json:"id"`
	OrderDate string    `json:"orderDate"`
	Branch    string    `json:"branch"`
	Product   string    `json:"product"`
	Quantity  float64   `json:"quantity"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NeedItem is one entry on the inventory "needs" list a branch keeps.
type NeedItem struct {
	ID        string    `json:"id"`
	Branch    string    `json:"branch"`
	Item      string    `json:"item"`
	Amount    string    `json:"amount"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Date range ---

// DateRange is an inclusive calendar window in ISO (2006-01-02) form.
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Days returns the calendar-day difference EndDate-StartDate, or 0 when
// either bound fails to parse.
func (dr DateRange) Days() int {
	start, err := time.Parse("2006-01-02", dr.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", dr.EndDate)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

// --- Pagination ---

// Pagination details for paginated responses.
type Pagination struct {
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// PaginatedOrdersResponse for the order-entry history screen.
type PaginatedOrdersResponse struct {
	Items      []Order    `json:"items"`
	Pagination Pagination `json:"pagination"`
}
