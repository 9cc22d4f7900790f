// internal/email/mailer/decision.go
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/openorg/orgfeed/internal/email"
	"github.com/openorg/orgfeed/internal/model"
)

// DecisionMailer notifies post authors about moderation decisions.
type DecisionMailer struct {
	emails  *email.Service
	baseURL string
}

func NewDecisionMailer(emails *email.Service, baseURL string) *DecisionMailer {
	return &DecisionMailer{
		emails:  emails,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// NotifyDecision emails the author about the post's new status.
func (m *DecisionMailer) NotifyDecision(_ context.Context, post *model.Post, author *model.Employee) error {
	if author == nil || author.Email == "" {
		return nil
	}

	return m.emails.SendEmail(email.EmailData{
		To:           author.Email,
		FromName:     "Organization News",
		Subject:      m.subject(post),
		TemplateName: "post_decision",
		TemplateData: map[string]interface{}{
			"AuthorName": author.FullName,
			"Title":      post.Title,
			"Status":     string(post.Status),
			"PostURL":    fmt.Sprintf("%s/posts/%s", m.baseURL, post.ID),
		},
	})
}

func (m *DecisionMailer) subject(post *model.Post) string {
	switch post.Status {
	case model.StatusPosted:
		return fmt.Sprintf("Your post %q has been published", post.Title)
	case model.StatusReturned:
		return fmt.Sprintf("Your post %q needs changes", post.Title)
	case model.StatusRejected:
		return fmt.Sprintf("Your post %q was rejected", post.Title)
	default:
		return fmt.Sprintf("Status update for your post %q", post.Title)
	}
}
