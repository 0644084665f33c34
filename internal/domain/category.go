package domain

// Category - категория принимаемых материалов (лампы, батареи, бумага...)
type Category struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	Image string `json:"image" db:"image"`
}
