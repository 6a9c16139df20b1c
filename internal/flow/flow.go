// Package flow models the confirmation/feedback sequence shared by the
// destructive and conditional user actions (delete account, delete item,
// restore account): one explicit state machine per flow, with the dialogs
// as pure projections of its state. Independent boolean dialog flags — and
// the impossible state combinations they allow — do not exist here.
package flow

import (
	"context"
	"errors"
	"sync"
)

type State int

const (
	StateIdle State = iota
	StatePending
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// ErrAlreadyPending reports a duplicate trigger while the flow's network
// call is still in flight. The trigger is refused; no second call is made.
var ErrAlreadyPending = errors.New("action already in progress")

// Flow is one feature flow's state. Safe for concurrent triggers: only one
// attempt can be pending at a time.
type Flow struct {
	mu      sync.Mutex
	state   State
	message string
}

func New() *Flow {
	return &Flow{}
}

// Begin moves idle → pending. Any other current state refuses the trigger.
func (f *Flow) Begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateIdle {
		return ErrAlreadyPending
	}
	f.state = StatePending
	f.message = ""
	return nil
}

// Resolve moves pending → success with the message to show.
func (f *Flow) Resolve(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StatePending {
		f.state = StateSuccess
		f.message = message
	}
}

// Fail moves pending → error with the message to show.
func (f *Flow) Fail(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StatePending {
		f.state = StateError
		f.message = message
	}
}

// Cancel moves pending → idle without a dialog. Used when the user
// declines the confirmation before the action runs.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StatePending {
		f.state = StateIdle
		f.message = ""
	}
}

// Acknowledge dismisses the terminal dialog, returning the flow to idle.
func (f *Flow) Acknowledge() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSuccess || f.state == StateError {
		f.state = StateIdle
		f.message = ""
	}
}

// Dialog is the visible projection: the current state and its message.
func (f *Flow) Dialog() (State, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.message
}

// UI is what a flow needs from the presentation layer.
type UI interface {
	// Confirm asks the user to approve a destructive action.
	Confirm(prompt string) (bool, error)
	// Success and Error show the terminal dialogs; returning from them is
	// the dismissal.
	Success(message string)
	Error(message string)
}

// Run drives one flow end to end:
//
//  1. The flow goes pending at the trigger; a duplicate trigger gets
//     ErrAlreadyPending immediately, before any dialog is shown.
//  2. confirmPrompt != "" shows a confirmation dialog; declining cancels
//     the flow back to idle and returns nil.
//  3. Success shows the success dialog, and its dismissal runs onSuccess —
//     the navigation or cache update that finalizes the flow.
//  4. Failure shows the error dialog with the action's message and returns
//     the error; the user re-triggers if they want a retry.
func Run(ctx context.Context, f *Flow, ui UI, confirmPrompt string, action func(ctx context.Context) (string, error), onSuccess func()) error {
	if err := f.Begin(); err != nil {
		return err
	}

	if confirmPrompt != "" {
		ok, err := ui.Confirm(confirmPrompt)
		if err != nil {
			f.Cancel()
			return err
		}
		if !ok {
			f.Cancel()
			return nil
		}
	}

	message, err := action(ctx)
	if err != nil {
		f.Fail(err.Error())
		_, msg := f.Dialog()
		ui.Error(msg)
		f.Acknowledge()
		return err
	}

	f.Resolve(message)
	_, msg := f.Dialog()
	ui.Success(msg)
	f.Acknowledge()
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}
