package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// handleInteraction routes every incoming interaction: slash commands by
// name, components and modals by the action part of their custom ID.
func (b *Bot) handleInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	var err error

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case SetupCmd:
			err = b.handleSetup(i)
		case ReloadCmd:
			err = b.handleReloadPrices(i)
		}

	case discordgo.InteractionMessageComponent:
		action, flowID := splitCustomID(i.MessageComponentData().CustomID)
		switch action {
		case CategorySelectID:
			err = b.handleCategorySelect(i)
		case ItemSelectID:
			err = b.handleItemSelect(i, flowID)
		case EditQtyButtonID:
			err = b.handleEditQuantities(i, flowID)
		case CheckoutButtonID:
			err = b.handleCheckout(i, flowID)
		case ClientSelectID:
			err = b.handleClientSelect(i, flowID)
		}

	case discordgo.InteractionModalSubmit:
		action, flowID := splitCustomID(i.ModalSubmitData().CustomID)
		if action == QuantityModalID {
			err = b.handleQuantitySubmit(i, flowID)
		}
	}

	if err != nil {
		b.log.Errorf("can't handle interaction: %v", err)
	}
}

func joinCustomID(action, flowID string) string {
	return action + customIDSep + flowID
}

func splitCustomID(customID string) (action, flowID string) {
	action, flowID, _ = strings.Cut(customID, customIDSep)
	return action, flowID
}

// replyEphemeral answers an interaction with a message only the invoker sees.
func (b *Bot) replyEphemeral(i *discordgo.InteractionCreate, content string) error {
	return b.reply(i, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

func (b *Bot) reply(i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) error {
	return b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// interactionUser returns the invoking user whether the interaction came from
// a guild or a DM.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// displayName prefers the guild nickname over the account name, like the
// client does.
func displayName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.Nick != "" {
		return i.Member.Nick
	}
	if u := interactionUser(i); u != nil {
		return u.Username
	}
	return ""
}
