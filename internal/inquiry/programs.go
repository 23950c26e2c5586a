package inquiry

// ProgramCodes is the closed set of program codes the API accepts.
// The empty string means "not specified" and is allowed on input.
var ProgramCodes = []string{
	"infant",
	"toddlers",
	"preschool",
	"kindergarten",
	"afterschool",
	"summer",
}

// programLabels maps a program code to its display label.
var programLabels = map[string]string{
	"infant":       "Infant Care (Ages 0-1)",
	"toddlers":     "Toddlers (Ages 2-3)",
	"preschool":    "Preschool (Ages 4-5)",
	"kindergarten": "Kindergarten Prep (Ages 5-6)",
	"afterschool":  "After School Program (Ages 6-12)",
	"summer":       "Summer Program (Ages 3-12)",
}

// ProgramLabel resolves a program code to its human-readable label.
//
// Unknown non-empty codes pass through verbatim so a stale client
// still produces a readable notification instead of an error. The
// empty code resolves to "Not specified".
func ProgramLabel(code string) string {
	if code == "" {
		return "Not specified"
	}
	if label, ok := programLabels[code]; ok {
		return label
	}
	return code
}
