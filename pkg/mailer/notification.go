package mailer

import (
	"encoding/json"
	"fmt"
)

// Notification is the JSON payload consumed from the notification queue.
// Event matches the domain event name; Payload carries the event fields.
type Notification struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Message is a rendered email ready to hand to Mailgun.
type Message struct {
	To      string
	Subject string
	Text    string
}

// Render maps a notification to an email. ok is false for events that do
// not produce mail, e.g. client.onboarded.
func Render(n Notification) (Message, bool, error) {
	var p struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		OldRole   string `json:"old_role"`
		NewRole   string `json:"new_role"`
		Reason    string `json:"reason"`
	}
	if err := json.Unmarshal(n.Payload, &p); err != nil {
		return Message{}, false, fmt.Errorf("decode notification payload: %w", err)
	}
	if p.Email == "" {
		return Message{}, false, nil
	}

	switch n.Event {
	case "lawyer.submitted_for_review":
		return Message{
			To:      p.Email,
			Subject: "Your application is under review",
			Text: fmt.Sprintf("Hi %s,\n\nWe received your lawyer application and our team is reviewing it. "+
				"We will email you as soon as the review is complete.\n", p.FirstName),
		}, true, nil
	case "account.role_changed":
		return Message{
			To:      p.Email,
			Subject: "Your account role has changed",
			Text:    fmt.Sprintf("Your account role was changed from %s to %s by an administrator.\n", p.OldRole, p.NewRole),
		}, true, nil
	case "account.banned":
		return Message{
			To:      p.Email,
			Subject: "Your account has been suspended",
			Text:    fmt.Sprintf("Your account has been suspended.\n\nReason: %s\n\nContact support if you believe this is a mistake.\n", p.Reason),
		}, true, nil
	case "account.unbanned":
		return Message{
			To:      p.Email,
			Subject: "Your account has been reinstated",
			Text:    "Your account suspension has been lifted. You can sign in again.\n",
		}, true, nil
	default:
		return Message{}, false, nil
	}
}
