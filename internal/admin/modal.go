package admin

import (
	"errors"
	"fmt"

	"storefront/internal/shopapi"
)

// State of an editor. A successful submit returns to StateIdle, a failed
// one back to StateModal with the error kept for display.
type State string

const (
	StateIdle       State = "idle"
	StateModal      State = "modal"
	StateSubmitting State = "submitting"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

var (
	ErrNoModal      = errors.New("admin: no editor is open")
	ErrBusy         = errors.New("admin: a submit is already in progress")
	ErrNotConfirmed = errors.New("admin: delete was not confirmed")
)

// modal is the state shared by both editors.
type modal struct {
	state    State
	mode     Mode
	targetID string
	err      string
	notice   string
}

func (m *modal) open(mode Mode, id string) error {
	if m.state == StateSubmitting {
		return ErrBusy
	}
	m.state, m.mode, m.targetID, m.err, m.notice = StateModal, mode, id, "", ""
	return nil
}

func (m *modal) beginSubmit() error {
	switch m.state {
	case StateModal:
		m.state = StateSubmitting
		m.err = ""
		return nil
	case StateSubmitting:
		return ErrBusy
	default:
		return ErrNoModal
	}
}

// fail returns to the open modal with err surfaced.
func (m *modal) fail(err error, fallback string) error {
	m.state = StateModal
	m.err = shopapi.Message(err, fallback)
	var ve *ValidationError
	if errors.As(err, &ve) {
		m.err = ve.Message
	}
	return err
}

func (m *modal) close() {
	m.state, m.mode, m.targetID, m.err = StateIdle, "", "", ""
}

// deleteNotice is the text shown when a delete failed.
func deleteNotice(err error, what string) string {
	if errors.Is(err, shopapi.ErrNetwork) {
		return "Server error"
	}
	return fmt.Sprintf("Failed to delete %s", what)
}

// ModalView is the serialisable editor state.
type ModalView struct {
	State    State  `json:"state"`
	Mode     Mode   `json:"mode,omitempty"`
	TargetID string `json:"targetId,omitempty"`
	Error    string `json:"error,omitempty"`
	Notice   string `json:"notice,omitempty"`
}

func (m *modal) view() ModalView {
	return ModalView{State: m.state, Mode: m.mode, TargetID: m.targetID, Error: m.err, Notice: m.notice}
}
