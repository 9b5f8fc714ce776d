package transaction

import "fmt"

// State is a position in the install transaction state machine.
//
//	Idle -> Announcing -> per file:
//	    AuditPending -> Auditing -> AuditFailed | InstallPending
//	    InstallPending -> Installing -> InstallFailed | Done
//	Done -> AuditPending (next file) | Succeeded
//	AuditFailed, InstallFailed -> Failed
type State int

const (
	// StateIdle is the initial state before Run.
	StateIdle State = iota
	StateAnnouncing
	StateAuditPending
	StateAuditing
	StateAuditFailed
	StateInstallPending
	StateInstalling
	StateInstallFailed
	StateDone
	// StateSucceeded is terminal: every file was installed.
	StateSucceeded
	// StateFailed is terminal: a file failed audit or install, or the daemon went away.
	StateFailed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnnouncing:
		return "announcing"
	case StateAuditPending:
		return "audit-pending"
	case StateAuditing:
		return "auditing"
	case StateAuditFailed:
		return "audit-failed"
	case StateInstallPending:
		return "install-pending"
	case StateInstalling:
		return "installing"
	case StateInstallFailed:
		return "install-failed"
	case StateDone:
		return "done"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}
