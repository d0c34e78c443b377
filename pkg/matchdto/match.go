package matchdto

import "time"

// MatchState is the read model returned by check_match and echoed after
// every successful write. Board holds eight strings of eight FEN-style
// letters, rank 0 (White's home rank) first.
type MatchState struct {
	ID         string    `json:"id"`
	Host       string    `json:"host"`
	Opponent   string    `json:"opponent"`
	Board      []string  `json:"board"`
	SideToMove string    `json:"side_to_move"`
	Status     string    `json:"status"`
	Winner     string    `json:"winner,omitempty"`
	Moves      []string  `json:"moves"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AdminState is the read model of the admin record.
type AdminState struct {
	Admin string `json:"admin,omitempty"`
}
