package gmail

import (
	"fmt"
	"time"

	"github.com/teemow/labelguard/internal/labelfield"
	"github.com/teemow/labelguard/internal/logging"
)

// NotifyExpiring sends one notice per document to its signatory. Documents
// without a signatory email are skipped and count neither as sent nor as
// failed. A failed send is logged and does not stop the remaining sends.
func (c *Client) NotifyExpiring(docs []labelfield.Document, cc []string, today time.Time, logger logging.Logger) (sent, failed int) {
	send := c.send
	if send == nil {
		send = c.SendEmail
	}

	for _, doc := range docs {
		if doc.SignatoryEmail == "" {
			logger.Debug("skipping document without signatory",
				logging.KeyFile, doc.ID)
			continue
		}

		msg := buildExpiryNotice(doc, cc, today)
		id, err := send(msg)
		if err != nil {
			logger.Warn("failed to send expiration notice",
				logging.KeyFile, doc.ID,
				"recipient", logging.AnonymizeEmail(doc.SignatoryEmail),
				logging.KeyError, err.Error())
			failed++
			continue
		}

		logger.Info("sent expiration notice",
			logging.KeyFile, doc.ID,
			"recipient", logging.AnonymizeEmail(doc.SignatoryEmail),
			"messageId", id)
		sent++
	}
	return sent, failed
}

// buildExpiryNotice renders the notice for one document. The wording shifts
// to past tense once the expiration date lies strictly before today.
func buildExpiryNotice(doc labelfield.Document, cc []string, today time.Time) *EmailMessage {
	verb := "will expire"
	if labelfield.IsExpired(doc, today) {
		verb = "has expired"
	}

	subject := fmt.Sprintf("Document expiration: %s", doc.Name)

	body := fmt.Sprintf("The document %q %s on %s.", doc.Name, verb, doc.ExpirationDate)
	if doc.URL != "" {
		body += fmt.Sprintf("\n\n%s", doc.URL)
	}
	body += "\n\nPlease review it and renew or retire it as appropriate."

	return &EmailMessage{
		To:      []string{doc.SignatoryEmail},
		Cc:      cc,
		Subject: subject,
		Body:    body,
	}
}
