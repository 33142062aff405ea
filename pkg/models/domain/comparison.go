package domain

// Comparison phrases a spend total as a quantity of some familiar purchase,
// e.g. Quantity "2.5" of Description "nice dinners out 🍽️".
type Comparison struct {
	Quantity    string
	Description string
}
