package potmanager

// Contribution is how much a participant put into the pot over the whole hand
type Contribution struct {
	ID     int
	Amount int
	Folded bool
}

// Refund is an uncalled amount handed back to the participant who bet it
type Refund struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
}
