// Package jobs holds the background job types pushed onto the queue. Every
// type here must be registered by name at boot so workers can deserialize it.
package jobs

import (
	"fmt"

	"github.com/shashiranjanraj/tradeport/pkg/notification"
	"github.com/shashiranjanraj/tradeport/pkg/queue"
)

// OrderStatusChangedJob emails the buyer when a seller moves their order to
// a new status.
type OrderStatusChangedJob struct {
	OrderID    string `json:"orderId"`
	BuyerEmail string `json:"buyerEmail"`
	BuyerName  string `json:"buyerName"`
	From       string `json:"from"`
	To         string `json:"to"`
}

func (j *OrderStatusChangedJob) Handle() error {
	errs := notification.Send(j.BuyerEmail, j)
	if len(errs) > 0 {
		return fmt.Errorf("order status notification: %v", errs[0])
	}
	return nil
}

func (j *OrderStatusChangedJob) Via() []string {
	return []string{"mail"}
}

func (j *OrderStatusChangedJob) ToMail() notification.MailData {
	subject := fmt.Sprintf("Your order is now %s", j.To)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your order <b>%s</b> moved from %s to <b>%s</b>.</p>",
		j.BuyerName, j.OrderID, j.From, j.To,
	)
	return notification.MailData{Subject: subject, Body: body}
}

// RegisterAll registers every job type with the queue. Call once at boot.
func RegisterAll() {
	queue.Register("*jobs.OrderStatusChangedJob", func() queue.Job { return &OrderStatusChangedJob{} })
	queue.Register("*jobs.ProfileSubmittedJob", func() queue.Job { return &ProfileSubmittedJob{} })
	queue.Register("*jobs.ProfileReviewedJob", func() queue.Job { return &ProfileReviewedJob{} })
}
