package models

import "strings"

// Draft is the unsaved content of the user form.
type Draft struct {
	Name  string
	Email string
}

func (d Draft) IsEmpty() bool {
	return d.Name == "" && d.Email == ""
}

// Payload is the draft as sent to the API, with surrounding whitespace removed.
func (d Draft) Payload() UserPayload {
	return UserPayload{Name: strings.TrimSpace(d.Name), Email: strings.TrimSpace(d.Email)}
}

// FormMode is either Creating or Editing.
type FormMode interface {
	isFormMode()
}

// Creating means a submit creates a new record.
type Creating struct{}

// Editing means a submit updates the record identified by TargetID.
type Editing struct {
	TargetID string
}

func (Creating) isFormMode() {}
func (Editing) isFormMode()  {}

// EditTarget returns the identifier being edited, if any.
func EditTarget(mode FormMode) (string, bool) {
	if e, ok := mode.(Editing); ok {
		return e.TargetID, true
	}
	return "", false
}
