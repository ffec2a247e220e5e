package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/discordmsg/internal/common/errorwrapper"
	"github.com/aleister1102/discordmsg/internal/config"
	"github.com/aleister1102/discordmsg/internal/datastore"
	"github.com/aleister1102/discordmsg/internal/httpclient"
	"github.com/aleister1102/discordmsg/internal/logger"
	"github.com/aleister1102/discordmsg/internal/notifier/discord"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries the loaded configuration and the resources opened for one command run.
type app struct {
	cfg     *config.GlobalConfig
	logger  zerolog.Logger
	closers []func() error
}

func newApp(cmd *cobra.Command, opts *rootOptions) (*app, error) {
	cfg, err := config.LoadGlobalConfig(opts.configPath, zerolog.Nop())
	if err != nil {
		return nil, errorwrapper.WrapError(err, "could not load configuration")
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	log, err := logger.NewLoggerBuilder().
		WithConsoleOutput(cmd.ErrOrStderr()).
		WithConfig(cfg.LogConfig).
		WithLevel(opts.logLevel).
		Build()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "could not initialize logger")
	}

	a := &app{
		cfg:     cfg,
		logger:  log.Zerolog().With().Str("command", cmd.Name()).Logger(),
		closers: []func() error{log.Close},
	}
	a.logger.Debug().Str("config_path", config.GetConfigPath(opts.configPath)).Msg("Configuration loaded")
	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func (a *app) httpClient() (*httpclient.HTTPClient, error) {
	httpCfg := a.cfg.HTTPConfig

	clientCfg := httpclient.DefaultHTTPClientConfig()
	clientCfg.Timeout = time.Duration(httpCfg.TimeoutSecs) * time.Second
	clientCfg.InsecureSkipVerify = httpCfg.InsecureSkipVerify
	clientCfg.Proxy = httpCfg.Proxy
	if httpCfg.UserAgent != "" {
		clientCfg.UserAgent = httpCfg.UserAgent
	}

	return httpclient.NewHTTPClientBuilder(a.logger).
		WithConfig(clientCfg).
		WithRetry(httpclient.RetryHandlerConfig{
			MaxRetries:       httpCfg.MaxRetries,
			BaseDelay:        time.Duration(httpCfg.BaseDelayMs) * time.Millisecond,
			MaxDelay:         time.Duration(httpCfg.MaxDelaySecs) * time.Second,
			EnableJitter:     httpCfg.EnableJitter,
			RetryStatusCodes: httpCfg.RetryStatusCodes,
		}).
		Build()
}

// deliveryStore opens the journal, or returns nil when journaling is disabled.
func (a *app) deliveryStore() (*datastore.DeliveryStore, error) {
	if !a.cfg.StorageConfig.RecordDeliveries {
		return nil, nil
	}
	store, err := datastore.NewDeliveryStore(a.cfg.StorageConfig.DeliveryDBPath, a.logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, store.Close)
	return store, nil
}

func (a *app) webhookNotifier() (*discord.DiscordNotifier, error) {
	client, err := a.httpClient()
	if err != nil {
		return nil, err
	}
	notifier, err := discord.NewDiscordNotifier(a.logger, client)
	if err != nil {
		return nil, err
	}

	store, err := a.deliveryStore()
	if err != nil {
		return nil, err
	}
	if store != nil {
		notifier.WithRecorder(store)
	}
	return notifier, nil
}

func (a *app) channelSender() (*discord.ChannelSender, error) {
	sender, err := discord.NewChannelSender(a.cfg.NotificationConfig.BotToken, a.logger)
	if err != nil {
		return nil, err
	}

	store, err := a.deliveryStore()
	if err != nil {
		return nil, err
	}
	if store != nil {
		sender.WithRecorder(store)
	}
	return sender, nil
}

// withWebhookDefaults layers the configured username and avatar over source.
func (a *app) withWebhookDefaults(source discord.MessageSource) discord.MessageSource {
	nc := a.cfg.NotificationConfig
	if nc.Username == "" && nc.AvatarURL == "" {
		return source
	}
	return &defaultedSource{source: source, username: nc.Username, avatarURL: nc.AvatarURL}
}

// defaultedSource fills webhook identity fields the wrapped source left unset.
type defaultedSource struct {
	source    discord.MessageSource
	username  string
	avatarURL string
}

func (s *defaultedSource) Build() (discord.Message, error) {
	message, err := s.source.Build()
	if err != nil {
		return nil, err
	}
	if _, ok := message[discord.FieldUsername]; !ok && s.username != "" {
		message[discord.FieldUsername] = s.username
	}
	if _, ok := message[discord.FieldAvatarURL]; !ok && s.avatarURL != "" {
		message[discord.FieldAvatarURL] = s.avatarURL
	}
	return message, nil
}
