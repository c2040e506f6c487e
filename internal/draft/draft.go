// Package draft holds the in-progress, not-yet-committed set of per-player
// scores collected before a round is submitted. A draft never touches the
// committed round list; on a failed commit it is preserved so the scores
// can be resubmitted without re-entry.
package draft

import (
	"strconv"
	"strings"

	"scoretally/internal/models"
)

// Step sizes offered by the quick increment/decrement buttons
var Steps = []int{1, 5, 10}

// Presets is the fixed quick-select score list: 0, 5, 10, ... 150
var Presets = buildPresets()

func buildPresets() []int {
	presets := make([]int, 0, 31)
	for v := 0; v <= 150; v += 5 {
		presets = append(presets, v)
	}
	return presets
}

// ErrMissingEntry is returned by Validate when a roster player has no
// draft entry
type ErrMissingEntry struct {
	PlayerID string
}

func (e *ErrMissingEntry) Error() string {
	return "missing score entry for player " + e.PlayerID
}

// Draft is one round's scratch buffer, keyed by player ID
type Draft struct {
	scores         map[string]int
	editingRoundID string
}

// New returns a draft with every roster player at 0
func New(players []*models.Player) *Draft {
	d := &Draft{
		scores: make(map[string]int, len(players)),
	}
	for _, p := range players {
		d.scores[p.ID] = 0
	}
	return d
}

// NewFromRound returns a draft pre-populated from an existing round for
// editing. Roster players missing from the round start at 0.
func NewFromRound(players []*models.Player, round *models.Round) *Draft {
	d := New(players)
	for _, p := range players {
		d.scores[p.ID] = round.Scores.Get(p.ID)
	}
	d.editingRoundID = round.ID
	return d
}

// Get returns the draft score for a player
func (d *Draft) Get(playerID string) int {
	return d.scores[playerID]
}

// Adjust moves a player's score by delta, clamped at 0
func (d *Draft) Adjust(playerID string, delta int) int {
	v := d.scores[playerID] + delta
	if v < 0 {
		v = 0
	}
	d.scores[playerID] = v
	return v
}

// Set stores a score for a player, clamped at 0
func (d *Draft) Set(playerID string, score int) int {
	if score < 0 {
		score = 0
	}
	d.scores[playerID] = score
	return score
}

// SetText parses a free-text entry for a player: non-digit characters are
// stripped and the result is clamped at 0. An entry with no digits reads
// as 0.
func (d *Draft) SetText(playerID, text string) int {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	score, err := strconv.Atoi(digits.String())
	if err != nil {
		score = 0
	}

	return d.Set(playerID, score)
}

// Validate checks that every roster player has a draft entry
func (d *Draft) Validate(players []*models.Player) error {
	for _, p := range players {
		if _, ok := d.scores[p.ID]; !ok {
			return &ErrMissingEntry{PlayerID: p.ID}
		}
	}
	return nil
}

// Scores returns a copy of the draft as a score map ready for submission
func (d *Draft) Scores() models.ScoreMap {
	out := make(models.ScoreMap, len(d.scores))
	for id, v := range d.scores {
		out[id] = v
	}
	return out
}

// Reset returns the draft to all-zero for the next round and leaves edit
// mode
func (d *Draft) Reset(players []*models.Player) {
	d.scores = make(map[string]int, len(players))
	for _, p := range players {
		d.scores[p.ID] = 0
	}
	d.editingRoundID = ""
}

// IsEditing reports whether the draft was loaded from an existing round
func (d *Draft) IsEditing() bool {
	return d.editingRoundID != ""
}

// EditingRoundID returns the round being edited, or "" when drafting a new
// round
func (d *Draft) EditingRoundID() string {
	return d.editingRoundID
}
