package users

// User is the identity Google sign-in hands back. Skin data lives in profiles.
type User struct {
	ID      string `json:"userId"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}
