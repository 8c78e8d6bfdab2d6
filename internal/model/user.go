package model

// User is the backend account bound to a chat session after login.
type User struct {
	UserID     int64  `json:"userID"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic"`
}
