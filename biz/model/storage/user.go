package storage

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeletedAt joins the unique indexes so a removed account frees its
// email and id for re-registration.
type UserRecord struct {
	GormModel
	DeletedAt    soft_delete.DeletedAt `gorm:"uniqueIndex:udx_users_user_id;uniqueIndex:udx_users_email"`
	UserId       string                `gorm:"size:64;not null;uniqueIndex:udx_users_user_id"` // opaque public id
	Email        string                `gorm:"size:128;not null;uniqueIndex:udx_users_email"`  // login email, stored lower-case
	Name         string                `gorm:"size:64;not null"`
	Tel          string                `gorm:"size:32"`
	Role         string                `gorm:"size:16;not null;default:user"`
	PasswordHash string                `gorm:"size:128;not null"`
}

func (UserRecord) TableName() string {
	return "users"
}
