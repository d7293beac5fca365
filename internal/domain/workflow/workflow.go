// Package workflow models the interactive edit and delete intents as an
// explicit state machine instead of ambient session flags.
//
// The two states are independent: a pending delete does not cancel an
// in-progress edit and vice versa. Callers that want one to clear the
// other do so explicitly.
package workflow

import "strings"

// Machine tracks which record is being edited and which is pending delete
// confirmation. The zero value is both-idle; New is provided for symmetry
// with the rest of the codebase.
type Machine struct {
	editing       string
	pendingDelete string
}

// New returns an idle machine.
func New() *Machine {
	return &Machine{}
}

// StartEdit requests editing of name. Requesting the name already being
// edited toggles back to idle. Returns true if the machine is now editing.
func (m *Machine) StartEdit(name string) bool {
	name = strings.TrimSpace(name)
	if m.editing != "" && strings.EqualFold(m.editing, name) {
		m.editing = ""
		return false
	}
	m.editing = name
	return true
}

// Editing returns the name being edited, if any.
func (m *Machine) Editing() (string, bool) {
	return m.editing, m.editing != ""
}

// FinishEdit clears the edit state after a successful save.
func (m *Machine) FinishEdit() {
	m.editing = ""
}

// CancelEdit abandons the in-progress edit.
func (m *Machine) CancelEdit() {
	m.editing = ""
}

// RequestDelete marks name as pending delete confirmation, replacing any
// previously pending name.
func (m *Machine) RequestDelete(name string) {
	m.pendingDelete = strings.TrimSpace(name)
}

// PendingDelete returns the name awaiting confirmation, if any.
func (m *Machine) PendingDelete() (string, bool) {
	return m.pendingDelete, m.pendingDelete != ""
}

// ConfirmDelete consumes the pending name and returns it for the caller
// to delete. Confirming with nothing pending is an error.
func (m *Machine) ConfirmDelete() (string, error) {
	if m.pendingDelete == "" {
		return "", ErrNoPendingDelete
	}
	name := m.pendingDelete
	m.pendingDelete = ""
	return name, nil
}

// CancelDelete abandons the pending delete.
func (m *Machine) CancelDelete() {
	m.pendingDelete = ""
}
