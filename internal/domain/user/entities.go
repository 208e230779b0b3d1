package user

import (
	"time"
)

type User struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public store-assigned identifier (32-char lowercase hex)
	DocID        string    `gorm:"column:doc_id;type:char(32);not null;uniqueIndex:ux_users_doc_id" json:"id"`
	Name         string    `gorm:"column:name;size:255;not null" json:"name"`
	Mobile       string    `gorm:"column:mobile;type:char(10);not null" json:"mobile"`
	TempPassword string    `gorm:"column:temp_password;type:char(8);not null" json:"temp_password"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// Collection name kept from the store schema.
func (User) TableName() string { return "Users" }
