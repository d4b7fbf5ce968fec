package domain

// User represents a registered solver account
type User struct {
	ID     string `json:"user_id"`
	Email  string `json:"email"`
	Handle string `json:"handle"` // competitive-programming handle
	Rating int    `json:"rating"`
	Gold   int    `json:"gold"`
}
