package jobs

import (
	"fmt"

	"github.com/shashiranjanraj/tradeport/config"
	"github.com/shashiranjanraj/tradeport/pkg/notification"
)

// ProfileSubmittedJob pings the review team when a seller submits their
// profile. Goes to Slack so the ops channel sees it immediately.
type ProfileSubmittedJob struct {
	SellerID    string `json:"sellerId"`
	SellerName  string `json:"sellerName"`
	SellerEmail string `json:"sellerEmail"`
}

func (j *ProfileSubmittedJob) Handle() error {
	errs := notification.Send(config.Get("REVIEW_TEAM_EMAIL", "reviews@tradeport.in"), j)
	if len(errs) > 0 {
		return fmt.Errorf("profile submitted notification: %v", errs[0])
	}
	return nil
}

func (j *ProfileSubmittedJob) Via() []string {
	return []string{"mail", "slack"}
}

func (j *ProfileSubmittedJob) ToMail() notification.MailData {
	return notification.MailData{
		Subject: fmt.Sprintf("Seller profile submitted: %s", j.SellerName),
		Body: fmt.Sprintf(
			"<p>%s (%s) submitted their profile for review.</p><p>Seller ID: %s</p>",
			j.SellerName, j.SellerEmail, j.SellerID,
		),
	}
}

func (j *ProfileSubmittedJob) ToSlack() notification.SlackData {
	return notification.SlackData{
		Text: fmt.Sprintf("Seller profile submitted for review: %s (%s)", j.SellerName, j.SellerID),
		Attachments: []notification.SlackAttachment{
			{Color: "good", Title: "New profile awaiting review", Footer: "tradeport onboarding"},
		},
	}
}
