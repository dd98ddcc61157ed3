package domain

// User represents a rider account as exposed to the rest of the system.
// The password never leaves the roster.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
	Address    string `json:"address,omitempty"`
}

// StoredUser is a roster entry. It carries the plaintext password because
// this is a demo credential store, not a real one.
type StoredUser struct {
	User
	Password string `json:"password"`
}

// Public returns the user record with the password stripped.
func (u StoredUser) Public() User {
	return u.User
}

// SeedUsers returns the fixture accounts the roster starts with.
func SeedUsers() []StoredUser {
	return []StoredUser{
		{
			User: User{
				ID:         "1",
				Name:       "John Doe",
				Email:      "john@example.com",
				Phone:      "+1234567890",
				ProfilePic: "https://randomuser.me/api/portraits/men/1.jpg",
			},
			Password: "password123",
		},
		{
			User: User{
				ID:         "2",
				Name:       "Demo User",
				Email:      "demo@example.com",
				Phone:      "+1987654321",
				ProfilePic: "https://randomuser.me/api/portraits/women/1.jpg",
			},
			Password: "password",
		},
	}
}
