package domain

// User identifies the owner of decks. Created at login; read-only afterwards.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
