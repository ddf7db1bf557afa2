package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/catalog"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/config"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/session"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/storage"
)

type Bot struct {
	session     *discordgo.Session
	catalog     *catalog.Store
	settings    storage.SettingsStore
	sessions    *session.Store
	messages    config.Messages
	checkoutTTL time.Duration
	log         *zap.SugaredLogger
}

func NewBot(
	s *discordgo.Session,
	catalogStore *catalog.Store,
	settingsStore storage.SettingsStore,
	sessions *session.Store,
	cfg *config.Config,
	log *zap.SugaredLogger,
) *Bot {
	return &Bot{
		session:     s,
		catalog:     catalogStore,
		settings:    settingsStore,
		sessions:    sessions,
		messages:    cfg.Messages,
		checkoutTTL: cfg.CheckoutTTL,
		log:         log,
	}
}

func (b *Bot) Start() error {
	b.session.Identify.Intents = discordgo.IntentsGuilds

	b.session.AddHandler(b.handleReady)
	b.session.AddHandler(b.handleInteraction)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("can't open gateway connection: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		b.session.Close()
		return err
	}
	return nil
}

func (b *Bot) Stop() error {
	b.sessions.Close()
	return b.session.Close()
}

func (b *Bot) handleReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.log.Infof("logged in as %s", r.User.String())
}

func (b *Bot) registerCommands() error {
	adminOnly := int64(discordgo.PermissionAdministrator)

	commands := []*discordgo.ApplicationCommand{
		{
			Name:                     SetupCmd,
			Description:              "Deploy the Menu and Job Panel",
			DefaultMemberPermissions: &adminOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "menu_channel",
					Description:  "Where to post prices",
					Required:     true,
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				},
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "job_channel",
					Description:  "Where to post the dashboard",
					Required:     true,
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "webhook",
					Description: "Log Webhook URL",
					Required:    true,
				},
			},
		},
		{
			Name:                     ReloadCmd,
			Description:              "Reload the price list from disk",
			DefaultMemberPermissions: &adminOnly,
		},
	}

	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd); err != nil {
			return fmt.Errorf("can't register command %s: %w", cmd.Name, err)
		}
	}
	return nil
}
