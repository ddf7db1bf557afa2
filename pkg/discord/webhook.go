package discord

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/pricing"
)

var webhookURLRe = regexp.MustCompile(`discord(?:app)?\.com/api/webhooks/(\d+)/([\w-]+)`)

// ParseWebhookURL extracts the webhook ID and token from a Discord webhook
// URL.
func ParseWebhookURL(url string) (id, token string, err error) {
	match := webhookURLRe.FindStringSubmatch(url)
	if match == nil {
		return "", "", fmt.Errorf("can't parse webhook URL %q", url)
	}
	return match[1], match[2], nil
}

// notifyInvoice forwards a completed invoice to the guild's log webhook.
// Best effort only: a missing setup record, a junk URL or a delivery failure
// is logged and swallowed, the client already has the receipt.
func (b *Bot) notifyInvoice(i *discordgo.InteractionCreate, invoice pricing.Invoice) {
	record, ok := b.settings.Get(i.GuildID)
	if !ok || record.WebhookURL == "" {
		return
	}

	id, token, err := ParseWebhookURL(record.WebhookURL)
	if err != nil {
		b.log.Errorf("webhook error: %v", err)
		return
	}

	_, err = b.session.WebhookExecute(id, token, false, &discordgo.WebhookParams{
		Username: webhookUsername,
		Embeds:   []*discordgo.MessageEmbed{invoiceEmbed(i, invoice)},
	})
	if err != nil {
		b.log.Errorf("webhook error: %v", err)
	}
}

func invoiceEmbed(i *discordgo.InteractionCreate, invoice pricing.Invoice) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "📋 New Invoice",
		Color:       colorInvoice,
		Description: invoice.LineText(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Client", Value: strings.ToUpper(string(invoice.ClientType)), Inline: true},
			{Name: "Total", Value: pricing.Dollars(invoice.Total), Inline: true},
		},
	}

	if user := interactionUser(i); user != nil {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    displayName(i),
			IconURL: user.AvatarURL(""),
		}
	}
	return embed
}
