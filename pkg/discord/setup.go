package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/catalog"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/pricing"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/storage"
)

// handleSetup persists the guild's settings (overwriting any prior record for
// this guild, leaving other guilds alone), then deploys the price list to the
// menu channel and the ordering panel to the job channel. The webhook URL is
// stored as given; a bad URL only surfaces later when a notification fails.
func (b *Bot) handleSetup(i *discordgo.InteractionCreate) error {
	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range i.ApplicationCommandData().Options {
		options[opt.Name] = opt
	}

	record := storage.ServerSettings{
		MenuChannelID: options["menu_channel"].ChannelValue(nil).ID,
		JobChannelID:  options["job_channel"].ChannelValue(nil).ID,
		WebhookURL:    options["webhook"].StringValue(),
	}

	if err := b.settings.Put(i.GuildID, record); err != nil {
		return fmt.Errorf("can't save settings for guild %s: %w", i.GuildID, err)
	}

	if err := b.replyEphemeral(i, b.messages.Responses.SetupSaved); err != nil {
		return fmt.Errorf("can't confirm setup: %w", err)
	}

	snap := b.catalog.Snapshot()

	if _, err := b.session.ChannelMessageSendEmbed(record.MenuChannelID, priceListEmbed(snap)); err != nil {
		return fmt.Errorf("can't deploy price list: %w", err)
	}

	_, err := b.session.ChannelMessageSendComplex(record.JobChannelID, &discordgo.MessageSend{
		Content:    b.messages.Responses.PanelGreeting,
		Components: panelComponents(),
	})
	if err != nil {
		return fmt.Errorf("can't deploy order panel: %w", err)
	}
	return nil
}

// handleReloadPrices swaps in a fresh catalog snapshot from disk.
func (b *Bot) handleReloadPrices(i *discordgo.InteractionCreate) error {
	if err := b.catalog.Reload(); err != nil {
		return fmt.Errorf("can't reload prices: %w", err)
	}
	return b.replyEphemeral(i, fmt.Sprintf(b.messages.Responses.PricesReloaded, b.catalog.Snapshot().Len()))
}

// priceListEmbed renders the read-only catalog. Regular categories list every
// item, striking through unavailable ones; Upgrades gets its own section with
// available items only.
func priceListEmbed(snap *catalog.Snapshot) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "💰 Paleto Tuners Price List",
		Color:       colorPriceList,
		Description: "Welcome! Below are our current service rates.\n❌ = Out of Stock / Unavailable",
	}

	for _, category := range catalog.CategoryOrder {
		if category == catalog.UpgradesCategory {
			continue
		}
		lines := make([]string, 0, len(catalog.Categories[category]))
		for _, it := range snap.ItemsInCategory(category) {
			if it.Available {
				lines = append(lines, fmt.Sprintf("• **%s** — %s", it.Name, pricing.Dollars(it.Price)))
			} else {
				lines = append(lines, fmt.Sprintf("• ~%s~ — **N/A**", it.Name))
			}
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  category,
			Value: strings.Join(lines, "\n"),
		})
	}

	var upgradeLines []string
	for _, it := range snap.AvailableItems(catalog.UpgradesCategory) {
		upgradeLines = append(upgradeLines, fmt.Sprintf("• **%s** — %s", it.Name, pricing.Dollars(it.Price)))
	}
	upgrades := "None"
	if len(upgradeLines) > 0 {
		upgrades = strings.Join(upgradeLines, "\n")
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "🚗 Upgrades",
		Value: upgrades,
	})

	return embed
}

// panelComponents builds the persistent category select of the dashboard.
func panelComponents() []discordgo.MessageComponent {
	minValues := 1
	options := make([]discordgo.SelectMenuOption, 0, len(panelCategories))
	for _, cat := range panelCategories {
		options = append(options, discordgo.SelectMenuOption{
			Label: cat.Name,
			Value: cat.Name,
			Emoji: &discordgo.ComponentEmoji{Name: cat.Emoji},
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    CategorySelectID,
					Placeholder: "Select a Category",
					MinValues:   &minValues,
					MaxValues:   1,
					Options:     options,
				},
			},
		},
	}
}
