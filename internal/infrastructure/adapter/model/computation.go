package model

import (
	"time"
)

// Computation represents the database model for stored diff computations
type Computation struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	FromInput string    `gorm:"not null;size:255"`
	ToInput   string    `gorm:"not null;size:255"`
	Absolute  bool      `gorm:"not null"`
	RoundTo   string    `gorm:"size:10"`
	Format    string    `gorm:"not null;size:100"`
	ResultMs  int64     `gorm:"not null"`
	Result    string    `gorm:"not null;size:100"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for Computation
func (Computation) TableName() string {
	return "computations"
}
