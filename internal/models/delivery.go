package models

import (
	"net/url"
	"strings"
	"time"
)

// DeliveryTransport identifies how a message was delivered.
type DeliveryTransport string

const (
	DeliveryTransportWebhook DeliveryTransport = "webhook"
	DeliveryTransportChannel DeliveryTransport = "channel"
)

// Delivery is one journaled attempt to deliver a built message.
type Delivery struct {
	ID          int64
	Transport   DeliveryTransport
	Destination string // Redacted webhook URL or channel id
	Payload     string // JSON encoded message
	StatusCode  int    // HTTP status, 0 when the request never completed
	Error       string // Empty on success
	SentAt      time.Time
}

// Succeeded reports whether the delivery completed with a 2xx status.
func (d Delivery) Succeeded() bool {
	return d.Error == "" && d.StatusCode >= 200 && d.StatusCode < 300
}

// RedactWebhookURL hides the token segment of a Discord webhook URL
// (https://discord.com/api/webhooks/{id}/{token}) so it can be stored safely.
func RedactWebhookURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "[invalid-url]"
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, segment := range segments {
		if segment == "webhooks" && i+2 < len(segments) {
			segments[i+2] = "REDACTED"
			break
		}
	}
	u.Path = "/" + strings.Join(segments, "/")
	u.RawQuery = ""
	return u.String()
}
