// Package inquiry contains the core domain logic for a childcare
// program inquiry: sanitizing raw form input, resolving program
// labels, and formatting the outbound notification text.
//
// Responsibilities:
//   - Clean raw string input so it is safe to render downstream.
//   - Map program codes to human-readable labels.
//   - Build the single notification text block sent to staff.
//
// Everything in this package is pure: no I/O, no clocks other than
// the format-time timestamp, no shared state.
package inquiry

// Inquiry is one sanitized form submission. It only exists for the
// duration of a single request and is never persisted.
//
// An Inquiry must be built from input that already passed request
// validation; the formatter assumes that and has no error paths.
type Inquiry struct {
	ParentName       string
	ChildName        string
	ChildAge         int
	Email            string
	Phone            string
	PreferredProgram string
	Message          string
}

// Notification is the display form of an Inquiry: the resolved
// program label plus the rendered multi-line text block handed to
// the notifier. It is created, delivered, and discarded.
type Notification struct {
	Inquiry

	// ProgramLabel is the human-readable label for PreferredProgram.
	ProgramLabel string

	// Text is the rendered notification body.
	Text string
}
