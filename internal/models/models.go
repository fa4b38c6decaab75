package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"        json:"id"`
	Username     string `gorm:"size:50;uniqueIndex;not null"    json:"username"`
	PasswordHash string `gorm:"size:100;not null"               json:"-"`
	Role         string `gorm:"size:5;not null"                 json:"role"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"                       json:"id"`
	Name        string  `gorm:"size:50;not null;uniqueIndex:idx_name_category" json:"name"`
	Description string  `gorm:"size:200;not null"                              json:"description"`
	Category    string  `gorm:"size:50;not null;uniqueIndex:idx_name_category" json:"category"`
	Price       float64 `gorm:"not null"                                       json:"price"`
	ImageURL    string  `gorm:"type:text"                                      json:"image_url"`
}
