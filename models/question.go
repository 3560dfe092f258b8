package models

// Question is a single quiz item. Category holds the numeric id of a
// Category row but is deliberately not a foreign key: the source data set
// contains dangling category values and the service must tolerate them.
type Question struct {
	ID         int    `json:"id" gorm:"primaryKey"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}
