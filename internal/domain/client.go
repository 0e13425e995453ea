package domain

import "time"

type Role string

const (
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// Client is an account that owns favorites. Clients authenticate with
// email and password; the role decides what other client records they
// may touch.
type Client struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Role         Role      `json:"role" gorm:"not null;default:user"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clients" }
