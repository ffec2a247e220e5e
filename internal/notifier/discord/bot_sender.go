package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
	"github.com/aleister1102/discordmsg/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// restRequester is the part of *discordgo.Session used to create messages.
type restRequester interface {
	RequestWithBucketID(method, urlStr string, data interface{}, bucketID string, options ...discordgo.RequestOption) ([]byte, error)
}

// ChannelSender posts messages to a channel with a bot token.
type ChannelSender struct {
	logger   zerolog.Logger
	session  restRequester
	recorder DeliveryRecorder
}

// NewChannelSender opens a REST-only discordgo session for the bot token.
func NewChannelSender(botToken string, logger zerolog.Logger) (*ChannelSender, error) {
	botToken = strings.TrimSpace(botToken)
	if botToken == "" {
		return nil, errorwrapper.WrapError(errorwrapper.ErrNotConfigured, "discord bot token")
	}

	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create discord session")
	}
	return newChannelSender(session, logger), nil
}

func newChannelSender(session restRequester, logger zerolog.Logger) *ChannelSender {
	return &ChannelSender{
		logger:  logger.With().Str("module", "ChannelSender").Logger(),
		session: session,
	}
}

// WithRecorder journals every delivery outcome to recorder.
func (cs *ChannelSender) WithRecorder(recorder DeliveryRecorder) *ChannelSender {
	cs.recorder = recorder
	return cs
}

// Send builds source and creates it as a message in channelID.
func (cs *ChannelSender) Send(ctx context.Context, channelID string, source MessageSource) (*discordgo.Message, error) {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return nil, errorwrapper.NewValidationError("channel_id", channelID, "channel id is required")
	}

	message, err := source.Build()
	if err != nil {
		cs.logger.Error().Err(err).Msg("Failed to build Discord message")
		return nil, err
	}

	endpoint := discordgo.EndpointChannelMessages(channelID)
	body, err := cs.session.RequestWithBucketID(http.MethodPost, endpoint, message, endpoint, discordgo.WithContext(ctx))
	cs.record(ctx, channelID, message, err)
	if err != nil {
		cs.logger.Error().Err(err).Str("channel_id", channelID).Msg("Failed to send Discord channel message")
		return nil, errorwrapper.WrapError(err, "failed to create channel message")
	}

	var created discordgo.Message
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to decode created message")
	}

	cs.logger.Info().Str("channel_id", channelID).Str("message_id", created.ID).Msg("Discord channel message sent successfully")
	return &created, nil
}

func (cs *ChannelSender) record(ctx context.Context, channelID string, message Message, sendErr error) {
	if cs.recorder == nil {
		return
	}

	payload, err := message.JSON()
	if err != nil {
		cs.logger.Warn().Err(err).Str("channel_id", channelID).Msg("Failed to encode journaled payload")
	}
	delivery := models.Delivery{
		Transport:   models.DeliveryTransportChannel,
		Destination: channelID,
		Payload:     string(payload),
		StatusCode:  http.StatusOK,
		SentAt:      time.Now().UTC(),
	}
	if sendErr != nil {
		delivery.StatusCode = 0
		delivery.Error = sendErr.Error()

		var restErr *discordgo.RESTError
		if errors.As(sendErr, &restErr) && restErr.Response != nil {
			delivery.StatusCode = restErr.Response.StatusCode
		}
	}

	if _, err := cs.recorder.RecordDelivery(ctx, delivery); err != nil {
		cs.logger.Warn().Err(err).Msg("Failed to record delivery")
	}
}
