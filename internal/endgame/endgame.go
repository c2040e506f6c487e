// Package endgame models the two-step end-of-game flow: the user first
// confirms they want to end the game, then chooses between completing it
// and saving it for later. Cancelling at either step resets the flow
// without invoking either action.
package endgame

import "context"

// Stage is the current step of the end-game flow
type Stage string

const (
	// StageConfirm is the initial step asking whether to end the game
	StageConfirm Stage = "confirm"

	// StageChoice is the second step choosing complete or save-for-later
	StageChoice Stage = "choice"
)

// ErrInvalidStage is returned when an action is invoked from the wrong step
type ErrInvalidStage struct {
	Stage  Stage
	Action string
}

func (e *ErrInvalidStage) Error() string {
	return "cannot " + e.Action + " from stage " + string(e.Stage)
}

// Action is invoked when the user lands on a terminal choice
type Action func(ctx context.Context) error

// Flow is the end-game state machine. The complete and save actions are
// injected so the flow can be driven and tested without any UI.
type Flow struct {
	stage    Stage
	complete Action
	save     Action
}

// New creates a flow in the confirm stage
func New(complete, save Action) *Flow {
	return &Flow{
		stage:    StageConfirm,
		complete: complete,
		save:     save,
	}
}

// Stage returns the current step
func (f *Flow) Stage() Stage {
	return f.stage
}

// Confirm advances from the confirm step to the choice step
func (f *Flow) Confirm() error {
	if f.stage != StageConfirm {
		return &ErrInvalidStage{Stage: f.stage, Action: "confirm"}
	}
	f.stage = StageChoice
	return nil
}

// Complete invokes the complete action and resets the flow. The flow stays
// in the choice stage if the action fails, so the user can retry.
func (f *Flow) Complete(ctx context.Context) error {
	if f.stage != StageChoice {
		return &ErrInvalidStage{Stage: f.stage, Action: "complete"}
	}
	if err := f.complete(ctx); err != nil {
		return err
	}
	f.stage = StageConfirm
	return nil
}

// SaveForLater invokes the save action and resets the flow. The flow stays
// in the choice stage if the action fails.
func (f *Flow) SaveForLater(ctx context.Context) error {
	if f.stage != StageChoice {
		return &ErrInvalidStage{Stage: f.stage, Action: "save for later"}
	}
	if err := f.save(ctx); err != nil {
		return err
	}
	f.stage = StageConfirm
	return nil
}

// Cancel closes the flow from either step without invoking any action and
// resets it for the next open
func (f *Flow) Cancel() {
	f.stage = StageConfirm
}
