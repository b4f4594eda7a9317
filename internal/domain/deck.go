package domain

import "fmt"

// Deck is a named collection of flashcards owned by one user.
// The deck's card set is derived by filtering flashcards on DeckID; there is
// no stored edge list, and the store does not enforce the foreign key.
type Deck struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

// Validate checks the fields a deck must have before it is written.
func (d *Deck) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("deck ID is required")
	}
	if d.Name == "" {
		return fmt.Errorf("deck name is required")
	}
	if d.UserID == "" {
		return fmt.Errorf("deck owner is required")
	}
	return nil
}
