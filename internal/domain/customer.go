package domain

import "time"

// Customer restaurant guest record
type Customer struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:100;index" json:"name"`
	Email       string    `gorm:"size:200;index" json:"email"`
	Phone       string    `gorm:"size:50" json:"phone"`
	LastVisit   time.Time `json:"last_visit"`
	TotalVisits int       `json:"total_visits"`
	TotalSpend  float64   `json:"total_spend"`
	Rating      float64   `json:"rating"` // satisfaction 0-5
	Preferences []string  `gorm:"serializer:json;type:text" json:"preferences"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Customer) TableName() string {
	return "crm_customer"
}
