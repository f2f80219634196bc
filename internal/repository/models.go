package repository

import (
	"database/sql"
	"time"
)

type User struct {
	ID          int64          `json:"id"`
	Username    string         `json:"username"`
	Title       sql.NullString `json:"title"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Email       string         `json:"email"`
	Password    string         `json:"password"`
	Active      bool           `json:"active"`
	IsSuperuser bool           `json:"is_superuser"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type InventoryItem struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	CostPrice  int64        `json:"cost_price"`
	Dept       string       `json:"dept"`
	Quantity   int          `json:"quantity"`
	ExpiryDate sql.NullTime `json:"expiry_date"`
	CreatedAt  time.Time    `json:"created_at"`
}

type Patient struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	BirthDate     time.Time `json:"birth_date"`
	MaritalStatus string    `json:"marital_status"`
	RegisteredBy  int64     `json:"registered_by"`
	Sex           string    `json:"sex"`
	Address       string    `json:"address"`
	Religion      string    `json:"religion"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
