package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound       GameError = "game not found"
	ErrRoundNotFound      GameError = "round not found"
	ErrGameCompleted      GameError = "game is already completed"
	ErrNameRequired       GameError = "game name is required"
	ErrTargetScoreInvalid GameError = "target score must be at least 1"
	ErrNotEnoughPlayers   GameError = "a game needs at least 2 players"
	ErrPlayerNameRequired GameError = "every player needs a user or a name"
	ErrDuplicatePlayer    GameError = "duplicate player in roster"
	ErrUnknownPlayer      GameError = "score entry for a player not in the game"
	ErrNegativeScore      GameError = "scores cannot be negative"
	ErrOwnerRequired      GameError = "owner ID is required"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilGameRepo        GameError = "game repository cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)
