package domain

// Item is a priced club inventory entry (gear, fees, merchandise).
type Item struct {
	ID          int64
	Name        string
	Description string
	Price       float64
}
