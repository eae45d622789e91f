package model

// User is a member of the fixed roster seeded at startup.
// Tasks, comments and activity entries reference users by ID; display
// names are denormalized copies resolved from this roster at read time.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}
