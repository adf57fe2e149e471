// Package join models a participant's request to join a pickup game as a
// small finite-state machine, plus the derived display mappings the UI
// renders from it.
package join

import "errors"

// Status is the lifecycle state of one (user, game) join request.
//
//	not_joined -> pending -> approved
//	                      -> denied
//
// approved and denied are terminal: a denied user cannot retry, and no
// transition leads back to not_joined.
type Status string

const (
	StatusNotJoined Status = "not_joined"
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDenied    Status = "denied"
)

var ErrInvalidTransition = errors.New("invalid join status transition")

// Valid reports whether s is one of the four known states.
func (s Status) Valid() bool {
	switch s {
	case StatusNotJoined, StatusPending, StatusApproved, StatusDenied:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusDenied
}

// Transition validates a state change. The only legal edges are
// not_joined->pending (user submits a request) and pending->approved /
// pending->denied (organizer decision).
func Transition(from, to Status) error {
	switch {
	case from == StatusNotJoined && to == StatusPending:
		return nil
	case from == StatusPending && (to == StatusApproved || to == StatusDenied):
		return nil
	}
	return ErrInvalidTransition
}

// CanJoin reports whether the join action is offered to the user: only in
// not_joined, and never once the game is at capacity, regardless of status.
func CanJoin(s Status, currentPlayers, maxPlayers int) bool {
	return s == StatusNotJoined && currentPlayers < maxPlayers
}

// Progress maps a status to the fixed progress value shown in the join
// status widget.
func Progress(s Status) int {
	switch s {
	case StatusPending:
		return 50
	case StatusApproved, StatusDenied:
		return 100
	default:
		return 0
	}
}

// ButtonLabel is the join button text for a status. For not_joined the label
// depends on whether the game is open or requires organizer approval.
func ButtonLabel(s Status, gameOpen bool) string {
	switch s {
	case StatusPending:
		return "Awaiting Approval"
	case StatusApproved:
		return "Joined"
	case StatusDenied:
		return "Join Request Denied"
	default:
		if gameOpen {
			return "Join Game"
		}
		return "Request to Join"
	}
}

// StatusText is the descriptive line under the progress bar. Empty for
// not_joined, where the widget is not shown.
func StatusText(s Status) string {
	switch s {
	case StatusPending:
		return "Your request is being reviewed by the organizer"
	case StatusApproved:
		return "You have been approved to join the game!"
	case StatusDenied:
		return "Your request to join has been denied"
	default:
		return ""
	}
}
