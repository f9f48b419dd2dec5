package model

// User roles
const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
)

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"` // 'student' or 'tutor'
	HashedPassword string `json:"hashedPassword,omitempty"`
	TelegramChatID *int64 `json:"telegramChatId,omitempty"` // nil = no Telegram push
}

// IsTutor checks if the user registered as a tutor
func (u *User) IsTutor() bool {
	return u.Role == RoleTutor
}

// Public returns a copy safe to expose over the API
func (u *User) Public() User {
	pub := *u
	pub.HashedPassword = ""
	return pub
}
