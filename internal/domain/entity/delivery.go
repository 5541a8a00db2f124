package entity

import "time"

// Delivery records one fired notification.
type Delivery struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Handle      string    `gorm:"column:handle;index"`
	Title       string    `gorm:"column:title;type:text"`
	Body        string    `gorm:"column:body;type:text"`
	TargetTime  time.Time `gorm:"column:target_time"`
	DeliveredAt time.Time `gorm:"column:delivered_at;index"`
	Error       string    `gorm:"column:error;type:text"` // Empty when delivery succeeded
}

// TableName specifies the table name for the Delivery entity.
func (Delivery) TableName() string {
	return "notification_delivery"
}
