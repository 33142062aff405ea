package api

// Order mirrors one record of the extractor's JSON output.
type Order struct {
	RestaurantName string `json:"restaurantName"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Total          string `json:"total"`
	Canceled       bool   `json:"canceled"`
}

// OrderHistory is the wrapped payload shape, {"orders": [...]}.
type OrderHistory struct {
	Orders []Order `json:"orders"`
}
