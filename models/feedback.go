package models

type Feedback struct {
	ID        string `json:"id"`
	UserID    string `json:"userId,omitempty"`
	Rating    int    `json:"rating,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"` // RFC 3339
}
