package models

type Category struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Type string `json:"type"`
}

func (Category) TableName() string {
	return "categories"
}
