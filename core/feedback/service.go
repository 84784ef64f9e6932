package feedback

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/apnapan/pulse/core"
)

// Entry is one feedback record in the remote table: timestamp, free text.
// The table is append-only.
type Entry struct {
	CreatedAt time.Time `json:"created_at"` // UTC
	Text      string    `json:"text"`
}

type NewEntry struct {
	Text string `json:"text" validate:"required"`
}

func (ne *NewEntry) Validate() error {
	ne.Text = core.CleanString(ne.Text)
	return core.Validate.Struct(ne)
}

type (
	// Repository abstracts the remote feedback table. AppendEntry is a
	// best-effort single attempt; a failure surfaces as *core.ConnectivityError.
	Repository interface {
		AppendEntry(entry Entry) error
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc}
}

// Submit appends the feedback to the remote table and, when a team address is
// configured, fires a notification email. The email is fire-and-forget; only
// the append can fail the submission.
func (svc *Service) Submit(ne NewEntry) (Entry, error) {
	entry := Entry{
		CreatedAt: time.Now().UTC(),
		Text:      ne.Text,
	}
	if err := svc.repo.AppendEntry(entry); err != nil {
		return Entry{}, err
	}

	if addr := core.Conf.FeedbackEmail; addr != "" && svc.mailSvc != nil {
		svc.mailSvc.SendMessages(&core.EmailMessage{
			To:      []mail.Address{{Address: addr}},
			Subject: "New feedback received",
			Body:    fmt.Sprintf("Received at %s:\n\n%s", entry.CreatedAt.Format(time.RFC1123), entry.Text),
		})
	}
	return entry, nil
}
