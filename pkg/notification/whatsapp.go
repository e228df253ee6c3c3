package notification

import (
	"fmt"

	"github.com/shashiranjanraj/tradeport/config"
	"github.com/shashiranjanraj/tradeport/pkg/logger"
)

// sendWhatsApp delivers a WhatsApp template message.
//
// The provider integration is gated behind WHATSAPP_ENABLED. While disabled
// the channel reports failure; Send collects the error without affecting the
// other channels, so sellers still get their email.
func sendWhatsApp(d WhatsAppData) error {
	if !config.WhatsAppEnabled() {
		return fmt.Errorf("notification: whatsapp channel is disabled")
	}

	if d.Phone == "" {
		return fmt.Errorf("notification: whatsapp phone is empty")
	}

	// TODO: wire the provider API client once the business account is verified.
	logger.Warn("notification: whatsapp provider not configured, dropping message",
		"phone", d.Phone, "template", d.Template)
	return fmt.Errorf("notification: whatsapp provider not configured")
}
