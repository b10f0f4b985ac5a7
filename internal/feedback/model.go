package feedback

import "time"

type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Category  string    `json:"category"` // bug | feature | general
	Message   string    `json:"message"`
	Rating    int       `json:"rating,omitempty"` // 1..5, 0 when not given
	CreatedAt time.Time `json:"created_at"`
}

var validCategories = map[string]bool{
	"bug":     true,
	"feature": true,
	"general": true,
}

func ValidCategory(c string) bool {
	return validCategories[c]
}
