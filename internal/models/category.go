package models

// Category represents a spending category.
//
// Categories are immutable reference data: they are seeded once on
// startup and shared by all users.
type Category struct {
	DefaultModel
	Name        string `gorm:"uniqueIndex"`
	Description string
}

// DefaultCategories returns the categories that are seeded on startup.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Food & Dining", Description: "Restaurants, groceries, food delivery"},
		{Name: "Transportation", Description: "Fuel, public transport, taxi, parking"},
		{Name: "Utilities", Description: "Electricity, water, gas, internet, phone"},
		{Name: "Shopping", Description: "Clothing, electronics, general shopping"},
		{Name: "Entertainment", Description: "Movies, streaming, games, hobbies"},
		{Name: "Healthcare", Description: "Medical, pharmacy, insurance"},
		{Name: "Education", Description: "Courses, books, tuition"},
		{Name: "Bills & Payments", Description: "Credit card, loans, subscriptions"},
		{Name: "Travel", Description: "Hotels, flights, vacation expenses"},
		{Name: "Other", Description: "Miscellaneous expenses"},
	}
}
