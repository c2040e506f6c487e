package models

// Player represents a roster entry in a game. A player is either a
// registered tenant user (UserID set) or a free-text guest (CustomName
// set). Entries are immutable once added and IDs are unique within a game.
type Player struct {
	// ID is the unique identifier for the player within the game
	ID string `json:"id"`

	// UserID is the tenant user ID, if the player is a registered user
	UserID string `json:"user_id,omitempty"`

	// CustomName is the display name for guest players
	CustomName string `json:"custom_name,omitempty"`
}

// Name returns the display name of the player
func (p *Player) Name() string {
	if p.CustomName != "" {
		return p.CustomName
	}
	return p.UserID
}
