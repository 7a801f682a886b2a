// Package huhforms builds the board's huh dialogs.
package huhforms

import (
	"fmt"

	"charm.land/huh/v2"
)

// ConfirmKey is the field key of the delete confirmation
const ConfirmKey = "confirm"

// DeleteConfirmForm asks whether to delete the project titled title.
// The answer is written to confirm, which starts out false so enter alone cancels.
func DeleteConfirmForm(title string, confirm *bool) *huh.Form {
	field := huh.NewConfirm().
		Key(ConfirmKey).
		Title(fmt.Sprintf("Delete %q?", title)).
		Description("This cannot be undone.").
		Affirmative("Delete").
		Negative("Cancel").
		Value(confirm)

	return huh.NewForm(huh.NewGroup(field)).WithShowHelp(false)
}
