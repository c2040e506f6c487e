// Package scoreboard holds a session's view of the score tracker: the
// active game and the owner's game list. Every mutation delegates to the
// game service and local state is replaced only from a successful
// response, so a failed call leaves the previous state intact.
package scoreboard

import (
	"context"
	"errors"
	"sync"

	"scoretally/internal/draft"
	"scoretally/internal/endgame"
	"scoretally/internal/models"
	gameService "scoretally/internal/services/game"
)

// ErrNoActiveGame is returned when a round operation runs without a
// current game selected
var ErrNoActiveGame = errors.New("no active game")

// ErrSubmitCancelled is returned when the user declines the target-reached
// confirmation; the draft is left intact
var ErrSubmitCancelled = errors.New("round submission cancelled")

// Store is the per-session state container
type Store struct {
	mu      sync.Mutex
	svc     gameService.Service
	ownerID string
	current *models.Game
	games   []*models.Game
}

// Config holds configuration for the scoreboard store
type Config struct {
	// GameService performs the actual mutations
	GameService gameService.Service

	// OwnerID scopes the game list
	OwnerID string
}

// New creates a scoreboard store for one owner's session
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.OwnerID == "" {
		return nil, errors.New("owner ID cannot be empty")
	}

	return &Store{
		svc:     cfg.GameService,
		ownerID: cfg.OwnerID,
	}, nil
}

// CurrentGame returns the active game, or nil when none is selected
func (s *Store) CurrentGame() *models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Games returns the last refreshed game list
func (s *Store) Games() []*models.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.games
}

// StartNewGame creates a game and makes it the active one. On failure the
// previous active game, if any, is untouched.
func (s *Store) StartNewGame(ctx context.Context, name string, targetScore int, players []gameService.PlayerEntry) (*models.Game, error) {
	output, err := s.svc.CreateGame(ctx, &gameService.CreateGameInput{
		OwnerID:     s.ownerID,
		Name:        name,
		TargetScore: targetScore,
		Players:     players,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = output.Game
	s.mu.Unlock()

	return output.Game, nil
}

// SelectGame makes an already-loaded game the active one
func (s *Store) SelectGame(ctx context.Context, gameID string) (*models.Game, error) {
	output, err := s.svc.GetGame(ctx, &gameService.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = output.Game
	s.mu.Unlock()

	return output.Game, nil
}

// ProposeRound evaluates a pending round against the active game without
// committing it. Callers prompt for confirmation when WouldReachTarget is
// true before calling CommitRound.
func (s *Store) ProposeRound(ctx context.Context, scores models.ScoreMap) (*gameService.ProposeRoundOutput, error) {
	current := s.CurrentGame()
	if current == nil {
		return nil, ErrNoActiveGame
	}

	return s.svc.ProposeRound(ctx, &gameService.ProposeRoundInput{
		GameID: current.ID,
		Scores: scores,
	})
}

// CommitRound appends a round to the active game. The local copy is only
// replaced once the service reports success.
func (s *Store) CommitRound(ctx context.Context, scores models.ScoreMap) (*models.Round, error) {
	current := s.CurrentGame()
	if current == nil {
		return nil, ErrNoActiveGame
	}

	output, err := s.svc.AddRound(ctx, &gameService.AddRoundInput{
		GameID: current.ID,
		Scores: scores,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = output.Game
	s.mu.Unlock()

	return output.Round, nil
}

// EditRound replaces a round's scores on the active game
func (s *Store) EditRound(ctx context.Context, roundID string, scores models.ScoreMap) (*models.Round, error) {
	current := s.CurrentGame()
	if current == nil {
		return nil, ErrNoActiveGame
	}

	output, err := s.svc.EditRound(ctx, &gameService.EditRoundInput{
		GameID:  current.ID,
		RoundID: roundID,
		Scores:  scores,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = output.Game
	s.mu.Unlock()

	return output.Round, nil
}

// SubmitDraft commits a draft against the active game. A new round is
// first proposed; when it would put a player at the target score, confirm
// decides whether to proceed before anything is committed. The draft is
// reset only after a successful commit, so a failed or cancelled submit
// can be retried without re-entering scores.
func (s *Store) SubmitDraft(ctx context.Context, d *draft.Draft, confirm func(projectedTotals map[string]int) bool) (*models.Round, error) {
	current := s.CurrentGame()
	if current == nil {
		return nil, ErrNoActiveGame
	}

	if err := d.Validate(current.Players); err != nil {
		return nil, err
	}
	scores := d.Scores()

	if d.IsEditing() {
		round, err := s.EditRound(ctx, d.EditingRoundID(), scores)
		if err != nil {
			return nil, err
		}
		d.Reset(current.Players)
		return round, nil
	}

	proposed, err := s.ProposeRound(ctx, scores)
	if err != nil {
		return nil, err
	}
	if proposed.WouldReachTarget && confirm != nil && !confirm(proposed.ProjectedTotals) {
		return nil, ErrSubmitCancelled
	}

	round, err := s.CommitRound(ctx, scores)
	if err != nil {
		return nil, err
	}
	d.Reset(current.Players)
	return round, nil
}

// EndGameFlow returns the two-step end-game flow bound to this store:
// completing persists and reconciles the game list, saving for later only
// clears the active focus
func (s *Store) EndGameFlow() *endgame.Flow {
	return endgame.New(
		func(ctx context.Context) error {
			return s.CompleteGame(ctx)
		},
		func(ctx context.Context) error {
			s.SaveForLater()
			return nil
		},
	)
}

// SaveForLater clears the active game focus. The game stays active on the
// backend and can be selected again from the list.
func (s *Store) SaveForLater() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// CompleteGame marks the active game complete, clears the focus, and
// refreshes the game list to reconcile with the backend
func (s *Store) CompleteGame(ctx context.Context) error {
	current := s.CurrentGame()
	if current == nil {
		return ErrNoActiveGame
	}

	_, err := s.svc.CompleteGame(ctx, &gameService.CompleteGameInput{
		GameID: current.ID,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	return s.RefreshGames(ctx)
}

// RefreshGames reloads the owner's game list from the backend. The local
// list is replaced wholesale on success.
func (s *Store) RefreshGames(ctx context.Context) error {
	output, err := s.svc.ListGames(ctx, &gameService.ListGamesInput{
		OwnerID: s.ownerID,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.games = output.Games
	s.mu.Unlock()

	return nil
}
