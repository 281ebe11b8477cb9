package models

// Category groups transactions under a user-defined display name.
// Transactions reference categories by name only, so deleting or renaming a
// category never cascades to the transactions that mention it.
type Category struct {
	ID   int             `json:"id" yaml:"id"`
	Name string          `json:"name" yaml:"name"`
	Icon string          `json:"icon" yaml:"icon"` // display-only, typically an emoji
	Kind TransactionKind `json:"kind" yaml:"kind"`
}
