package inquiry

import (
	"fmt"
	"time"
)

// defaultMessage is used when the submitter left the message blank.
const defaultMessage = "No message provided."

// jst is Japan Standard Time. A fixed zone avoids depending on the
// host tzdata; JST has no daylight saving.
var jst = time.FixedZone("JST", 9*60*60)

// Format builds the Notification for a sanitized inquiry.
//
// It resolves the program label, defaults an empty message, and
// renders the notification text with a JST timestamp taken at call
// time. It always succeeds: formatting has no error conditions once
// the inquiry has been validated and sanitized.
func Format(inq Inquiry) Notification {
	if inq.Message == "" {
		inq.Message = defaultMessage
	}

	label := ProgramLabel(inq.PreferredProgram)
	receivedAt := time.Now().In(jst).Format("2006/01/02 15:04:05")

	text := fmt.Sprintf(
		"*New Childcare Inquiry*\n\n"+
			"*Parent:* %s\n"+
			"*Email:* %s\n"+
			"*Phone:* %s\n\n"+
			"*Child:* %s (age %d)\n"+
			"*Program:* %s\n\n"+
			"*Message:*\n%s\n\n"+
			"_Received: %s (JST)_",
		inq.ParentName,
		inq.Email,
		inq.Phone,
		inq.ChildName,
		inq.ChildAge,
		label,
		inq.Message,
		receivedAt,
	)

	return Notification{
		Inquiry:      inq,
		ProgramLabel: label,
		Text:         text,
	}
}
