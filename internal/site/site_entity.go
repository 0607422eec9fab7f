package site

import (
	"time"

	"github.com/google/uuid"
)

type Site struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"column:name;type:varchar(150);not null"`
	Location  string    `gorm:"column:location;type:varchar(255)"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Site) TableName() string {
	return "sites"
}

type Worker struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	SiteID      uuid.UUID `gorm:"column:site_id;type:uuid;not null;index"`
	Name        string    `gorm:"column:name;type:varchar(150);not null"`
	Designation string    `gorm:"column:designation;type:varchar(100)"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Worker) TableName() string {
	return "workers"
}
