package domain

import "context"

// SavedSet holds bookmarked record ids in the order they were saved.
type SavedSet []string

func (s SavedSet) Contains(id string) bool {
	for _, existing := range s {
		if existing == id {
			return true
		}
	}
	return false
}

// Toggle returns a new set with id removed if present or appended if absent.
// The receiver is never modified. added reports which of the two happened.
func (s SavedSet) Toggle(id string) (next SavedSet, added bool) {
	next = make(SavedSet, 0, len(s)+1)
	for _, existing := range s {
		if existing == id {
			continue
		}
		next = append(next, existing)
	}
	if len(next) == len(s) {
		next = append(next, id)
		return next, true
	}
	return next, false
}

type SavedItems struct {
	IDs   SavedSet  `json:"ids"`
	Items []Listing `json:"items"`
}

type ToggleResult struct {
	ID    string   `json:"id"`
	Saved bool     `json:"saved"`
	IDs   SavedSet `json:"ids"`
}

type SavedUsecase interface {
	GetSaved(ctx context.Context, clientID string) (SavedSet, error)
	ListSavedItems(ctx context.Context, clientID string) (*SavedItems, error)
	ToggleSaved(ctx context.Context, clientID, recordID string) (*ToggleResult, error)
}
