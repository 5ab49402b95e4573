package models

// SearchHistory is an append-only log entry of a bot phone lookup
type SearchHistory struct {
	Base
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Phone  string `gorm:"not null" json:"phone"`
	Found  bool   `gorm:"not null" json:"found"`
}

// TableName keeps the singular table name used by the directory schema
func (SearchHistory) TableName() string { return "search_history" }
