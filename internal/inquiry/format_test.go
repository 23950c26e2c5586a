package inquiry

import (
	"strings"
	"testing"
)

func TestProgramLabel(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "known code resolved",
			code: "preschool",
			want: "Preschool (Ages 4-5)",
		},
		{
			name: "toddlers resolved",
			code: "toddlers",
			want: "Toddlers (Ages 2-3)",
		},
		{
			name: "unknown code passes through verbatim",
			code: "xyz-unknown",
			want: "xyz-unknown",
		},
		{
			name: "empty means not specified",
			code: "",
			want: "Not specified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgramLabel(tt.code); got != tt.want {
				t.Errorf("ProgramLabel(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestProgramCodesAllHaveLabels(t *testing.T) {
	for _, code := range ProgramCodes {
		if _, ok := programLabels[code]; !ok {
			t.Errorf("program code %q has no label", code)
		}
	}
}

func TestFormatContainsNamesVerbatim(t *testing.T) {
	n := Format(Inquiry{
		ParentName:       "Jane Doe",
		ChildName:        "Tom Doe",
		ChildAge:         5,
		Email:            "jane@example.com",
		Phone:            "+81-90-1234-5678",
		PreferredProgram: "preschool",
		Message:          "Looking forward to a tour.",
	})

	if !strings.Contains(n.Text, "Jane Doe") {
		t.Errorf("notification text missing parent name: %q", n.Text)
	}
	if !strings.Contains(n.Text, "Tom Doe") {
		t.Errorf("notification text missing child name: %q", n.Text)
	}
	if !strings.Contains(n.Text, "Preschool (Ages 4-5)") {
		t.Errorf("notification text missing program label: %q", n.Text)
	}
	if !strings.Contains(n.Text, "Looking forward to a tour.") {
		t.Errorf("notification text missing message: %q", n.Text)
	}
	// The timestamp is taken at format time; only assert it is tagged.
	if !strings.Contains(n.Text, "JST") {
		t.Errorf("notification text missing timestamp marker: %q", n.Text)
	}
}

func TestFormatDefaultsEmptyMessage(t *testing.T) {
	n := Format(Inquiry{
		ParentName: "Jane Doe",
		ChildName:  "Tom Doe",
		ChildAge:   5,
		Email:      "jane@example.com",
		Phone:      "+81-90-1234-5678",
	})

	if n.Message != defaultMessage {
		t.Errorf("Message = %q, want %q", n.Message, defaultMessage)
	}
	if !strings.Contains(n.Text, defaultMessage) {
		t.Errorf("notification text missing default message: %q", n.Text)
	}
}

func TestFormatUnknownProgramFallsBack(t *testing.T) {
	n := Format(Inquiry{
		ParentName:       "Jane Doe",
		ChildName:        "Tom Doe",
		ChildAge:         5,
		Email:            "jane@example.com",
		Phone:            "+81-90-1234-5678",
		PreferredProgram: "xyz-unknown",
	})

	if n.ProgramLabel != "xyz-unknown" {
		t.Errorf("ProgramLabel = %q, want fallback %q", n.ProgramLabel, "xyz-unknown")
	}
}
