// Package accounts is the user/activity API living beside the relay.
// It shares the process but not the relay's state: relayed events are
// never authenticated against it.
package accounts

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Account struct {
	ID       uint   `gorm:"primarykey"`
	Name     string `gorm:"not null"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt hash

	Activities []Activity
}

// Activity is one "joined meeting X" history entry.
type Activity struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	AccountID   uint      `gorm:"index;not null" json:"-"`
	MeetingCode string    `json:"meeting_code"`
	Date        time.Time `json:"date"`
}

func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&Account{}, &Activity{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
