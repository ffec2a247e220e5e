package discord

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
	"github.com/aleister1102/discordmsg/internal/httpclient"
	"github.com/aleister1102/discordmsg/internal/models"
	"github.com/rs/zerolog"
)

// MaxAttachmentSize is Discord's upload limit for servers without boosts.
const MaxAttachmentSize = 8 * 1024 * 1024

// DeliveryRecorder journals the outcome of a delivery.
type DeliveryRecorder interface {
	RecordDelivery(ctx context.Context, delivery models.Delivery) (int64, error)
}

// DiscordNotifier executes Discord webhooks.
type DiscordNotifier struct {
	logger     zerolog.Logger
	httpClient *httpclient.HTTPClient
	recorder   DeliveryRecorder
}

// NewDiscordNotifier creates a new DiscordNotifier instance. The webhook URL is provided per send.
func NewDiscordNotifier(logger zerolog.Logger, httpClient *httpclient.HTTPClient) (*DiscordNotifier, error) {
	if httpClient == nil {
		return nil, errorwrapper.WrapError(errorwrapper.ErrInvalidConfiguration, "http client is required")
	}

	return &DiscordNotifier{
		logger:     logger.With().Str("module", "DiscordNotifier").Logger(),
		httpClient: httpClient,
	}, nil
}

// WithRecorder journals every delivery outcome to recorder.
func (dn *DiscordNotifier) WithRecorder(recorder DeliveryRecorder) *DiscordNotifier {
	dn.recorder = recorder
	return dn
}

// SendNotification builds source and posts it to webhookURL, attaching the file at
// attachmentPath when it is not empty. An empty webhookURL skips the send.
func (dn *DiscordNotifier) SendNotification(ctx context.Context, webhookURL string, source MessageSource, attachmentPath string) error {
	if webhookURL == "" {
		dn.logger.Warn().Msg("Discord webhook URL is not configured, skipping notification")
		return nil
	}

	if err := validateWebhookURL(webhookURL); err != nil {
		dn.logger.Error().Err(err).Str("webhook_url", models.RedactWebhookURL(webhookURL)).Msg("Invalid Discord webhook URL")
		return err
	}

	message, err := source.Build()
	if err != nil {
		dn.logger.Error().Err(err).Msg("Failed to build Discord message")
		return err
	}

	payloadJSON, err := message.JSON()
	if err != nil {
		return errorwrapper.WrapError(err, "failed to marshal discord payload")
	}

	req := &httpclient.HTTPRequest{
		URL:        webhookURL,
		DisplayURL: models.RedactWebhookURL(webhookURL),
		Method:     http.MethodPost,
		Context:    ctx,
	}
	if attachmentPath == "" {
		req.Headers = map[string]string{"Content-Type": "application/json"}
		req.Body = payloadJSON
	} else {
		body, contentType, err := buildMultipartBody(payloadJSON, attachmentPath)
		if err != nil {
			dn.logger.Error().Err(err).Str("file_path", attachmentPath).Msg("Failed to prepare attachment")
			return err
		}
		req.Headers = map[string]string{"Content-Type": contentType}
		req.Body = body
	}

	resp, err := dn.httpClient.Do(req)
	if err == nil && !resp.IsSuccess() {
		err = errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, string(resp.Body), req.DisplayURL)
	}
	dn.record(ctx, webhookURL, payloadJSON, resp, err)

	if err != nil {
		dn.logger.Error().Err(err).Str("webhook_url", models.RedactWebhookURL(webhookURL)).Msg("Failed to send Discord notification")
		return err
	}

	dn.logger.Info().
		Int("status_code", resp.StatusCode).
		Str("webhook_url", models.RedactWebhookURL(webhookURL)).
		Bool("attachment", attachmentPath != "").
		Msg("Discord notification sent successfully")
	return nil
}

func (dn *DiscordNotifier) record(ctx context.Context, webhookURL string, payload []byte, resp *httpclient.HTTPResponse, sendErr error) {
	if dn.recorder == nil {
		return
	}

	delivery := models.Delivery{
		Transport:   models.DeliveryTransportWebhook,
		Destination: models.RedactWebhookURL(webhookURL),
		Payload:     string(payload),
		SentAt:      time.Now().UTC(),
	}
	if resp != nil {
		delivery.StatusCode = resp.StatusCode
	}
	if sendErr != nil {
		delivery.Error = sendErr.Error()
	}

	if _, err := dn.recorder.RecordDelivery(ctx, delivery); err != nil {
		dn.logger.Warn().Err(err).Msg("Failed to record delivery")
	}
}

func validateWebhookURL(webhookURL string) error {
	u, err := url.ParseRequestURI(webhookURL)
	if err != nil {
		return errorwrapper.NewValidationError("webhook_url", models.RedactWebhookURL(webhookURL), err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errorwrapper.NewValidationError("webhook_url", models.RedactWebhookURL(webhookURL), "scheme must be http or https")
	}
	return nil
}

// buildMultipartBody encodes payload_json and one file part, returning the body and its content type.
func buildMultipartBody(payloadJSON []byte, attachmentPath string) ([]byte, string, error) {
	info, err := os.Stat(attachmentPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to stat attachment '%s': %w", attachmentPath, err)
	}
	if info.Size() > MaxAttachmentSize {
		return nil, "", fmt.Errorf("%w: '%s' is %d bytes, limit is %d", errorwrapper.ErrAttachmentTooLarge, attachmentPath, info.Size(), MaxAttachmentSize)
	}

	file, err := os.Open(attachmentPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open attachment '%s': %w", attachmentPath, err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("payload_json", string(payloadJSON)); err != nil {
		return nil, "", errorwrapper.WrapError(err, "failed to write payload_json to multipart")
	}

	part, err := writer.CreateFormFile("files[0]", filepath.Base(attachmentPath))
	if err != nil {
		return nil, "", errorwrapper.WrapError(err, "failed to create form file")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", errorwrapper.WrapError(err, "failed to copy file data to form")
	}

	if err := writer.Close(); err != nil {
		return nil, "", errorwrapper.WrapError(err, "failed to close multipart writer")
	}
	return body.Bytes(), writer.FormDataContentType(), nil
}
