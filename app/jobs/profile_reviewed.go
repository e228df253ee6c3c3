package jobs

import (
	"fmt"

	"github.com/shashiranjanraj/tradeport/pkg/notification"
)

// ProfileReviewedJob tells the seller the outcome of the admin review.
// WhatsApp is listed alongside mail; the channel no-ops until the business
// account is verified.
type ProfileReviewedJob struct {
	SellerEmail string `json:"sellerEmail"`
	SellerName  string `json:"sellerName"`
	SellerPhone string `json:"sellerPhone"`
	Approved    bool   `json:"approved"`
}

func (j *ProfileReviewedJob) Handle() error {
	errs := notification.Send(j.SellerEmail, j)
	if len(errs) > 0 {
		return fmt.Errorf("profile reviewed notification: %v", errs[0])
	}
	return nil
}

func (j *ProfileReviewedJob) Via() []string {
	return []string{"mail", "whatsapp"}
}

func (j *ProfileReviewedJob) ToMail() notification.MailData {
	if j.Approved {
		return notification.MailData{
			Subject: "Your seller profile is approved",
			Body:    fmt.Sprintf("<p>Hi %s,</p><p>Your profile has been approved. You can start listing products.</p>", j.SellerName),
		}
	}
	return notification.MailData{
		Subject: "Your seller profile needs changes",
		Body:    fmt.Sprintf("<p>Hi %s,</p><p>Your profile was not approved. Please review your details and resubmit.</p>", j.SellerName),
	}
}

func (j *ProfileReviewedJob) ToWhatsApp() notification.WhatsAppData {
	text := "Your Tradeport seller profile was not approved. Please resubmit."
	if j.Approved {
		text = "Your Tradeport seller profile is approved. Happy selling!"
	}
	return notification.WhatsAppData{Phone: j.SellerPhone, Text: text}
}
