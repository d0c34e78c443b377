// Package matchdto defines the wire-level request and response shapes of the
// arbiter service. It carries no game logic.
package matchdto

// Move is the external move representation: original and new are [x, y]
// pairs with each component in 0..7. Promotion is required when a pawn
// reaches the farthest rank and must name one of "queen", "rook", "bishop"
// or "knight"; it is absent otherwise.
type Move struct {
	Original  [2]int `json:"original"`
	New       [2]int `json:"new"`
	Promotion string `json:"promotion,omitempty"`
}

// StartMatchRequest creates a match; the requester becomes host and White.
type StartMatchRequest struct {
	Opponent  string `json:"opponent"`
	FirstMove Move   `json:"first_move"`
}

// PlayMoveRequest applies one ply to the (host, opponent) pair's match.
type PlayMoveRequest struct {
	Host     string `json:"host"`
	Opponent string `json:"opponent"`
	Move     Move   `json:"move"`
}

// UpdateAdminRequest replaces the admin identity; a null admin clears it.
type UpdateAdminRequest struct {
	Admin *string `json:"admin"`
}
