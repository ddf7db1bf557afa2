package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/catalog"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/pricing"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/session"
)

// handleCategorySelect starts a new order flow off the deployed panel: it
// creates a session and offers the category's available items.
func (b *Bot) handleCategorySelect(i *discordgo.InteractionCreate) error {
	category := i.MessageComponentData().Values[0]

	snap := b.catalog.Snapshot()
	options := itemOptions(snap, category)
	if len(options) == 0 {
		return b.replyEphemeral(i, b.messages.Errors.CategoryEmpty)
	}

	sess := b.sessions.Create(category)

	minValues := 1
	return b.reply(i, &discordgo.InteractionResponseData{
		Content: fmt.Sprintf(b.messages.Responses.SelectItems, category),
		Flags:   discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    joinCustomID(ItemSelectID, sess.FlowID),
						Placeholder: "Select Services (Multi-select)",
						MinValues:   &minValues,
						MaxValues:   min(len(options), maxSelectOptions),
						Options:     options,
					},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Edit Quantities",
						Style:    discordgo.PrimaryButton,
						CustomID: joinCustomID(EditQtyButtonID, sess.FlowID),
					},
					discordgo.Button{
						Label:    "Checkout",
						Style:    discordgo.SuccessButton,
						CustomID: joinCustomID(CheckoutButtonID, sess.FlowID),
					},
				},
			},
		},
	})
}

// itemOptions builds the select options for a category. Unavailable items are
// never offered; the platform caps a menu at 25 options.
func itemOptions(snap *catalog.Snapshot, category string) []discordgo.SelectMenuOption {
	items := snap.AvailableItems(category)
	if len(items) > maxSelectOptions {
		items = items[:maxSelectOptions]
	}

	options := make([]discordgo.SelectMenuOption, 0, len(items))
	for _, it := range items {
		options = append(options, discordgo.SelectMenuOption{
			Label: it.Name,
			Value: it.Name,
		})
	}
	return options
}

// handleItemSelect records the current multi-selection. New items enter the
// cart at quantity 1; quantities of deselected items are kept on purpose, so
// reselecting restores them.
func (b *Bot) handleItemSelect(i *discordgo.InteractionCreate, flowID string) error {
	sess, ok := b.sessions.Get(flowID)
	if !ok {
		return b.replyEphemeral(i, b.messages.Errors.SessionExpired)
	}

	sess.SetSelected(i.MessageComponentData().Values)

	return b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

// handleEditQuantities opens the quantity modal, one text input per selected
// item. The modal fits at most 5 inputs, so bigger selections are rejected.
func (b *Bot) handleEditQuantities(i *discordgo.InteractionCreate, flowID string) error {
	sess, ok := b.sessions.Get(flowID)
	if !ok {
		return b.replyEphemeral(i, b.messages.Errors.SessionExpired)
	}

	if reject := b.quantityEditReject(sess); reject != "" {
		return b.replyEphemeral(i, reject)
	}

	selected := sess.Selected()
	rows := make([]discordgo.MessageComponent, 0, len(selected))
	for _, name := range selected {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:  name,
					Label:     name,
					Style:     discordgo.TextInputShort,
					Value:     strconv.FormatInt(sess.Quantity(name), 10),
					Required:  true,
					MinLength: 1,
					MaxLength: 2,
				},
			},
		})
	}

	return b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   joinCustomID(QuantityModalID, flowID),
			Title:      "Edit Quantities",
			Components: rows,
		},
	})
}

// quantityEditReject decides whether the quantity modal may open: the flow
// needs at least one selected item and the modal fits at most 5 inputs.
// Returns the rejection message, or "" to proceed.
func (b *Bot) quantityEditReject(sess *session.Session) string {
	switch n := sess.SelectedCount(); {
	case n == 0:
		return b.messages.Errors.NoSelection
	case n > maxModalInputs:
		return b.messages.Errors.TooManySelected
	}
	return ""
}

// checkoutReject decides whether checkout may proceed: an empty cart is
// rejected before any receipt or webhook side effect can fire.
func (b *Bot) checkoutReject(sess *session.Session) string {
	if sess.Empty() {
		return b.messages.Errors.EmptyCart
	}
	return ""
}

// handleQuantitySubmit applies the modal inputs. Junk input leaves the prior
// quantity, values below 1 clamp to 1.
func (b *Bot) handleQuantitySubmit(i *discordgo.InteractionCreate, flowID string) error {
	sess, ok := b.sessions.Get(flowID)
	if !ok {
		return b.replyEphemeral(i, b.messages.Errors.SessionExpired)
	}

	for _, row := range i.ModalSubmitData().Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			if input, ok := component.(*discordgo.TextInput); ok {
				sess.SetQuantity(input.CustomID, input.Value)
			}
		}
	}

	return b.replyEphemeral(i, b.messages.Responses.QuantitiesUpdated)
}

// handleCheckout moves a non-empty cart to the client-type step.
func (b *Bot) handleCheckout(i *discordgo.InteractionCreate, flowID string) error {
	sess, ok := b.sessions.Get(flowID)
	if !ok {
		return b.replyEphemeral(i, b.messages.Errors.SessionExpired)
	}
	if reject := b.checkoutReject(sess); reject != "" {
		return b.replyEphemeral(i, reject)
	}

	b.sessions.Extend(flowID, b.checkoutTTL)

	minValues := 1
	options := make([]discordgo.SelectMenuOption, 0, len(clientTypeOptions))
	for _, opt := range clientTypeOptions {
		options = append(options, discordgo.SelectMenuOption{Label: opt.Label, Value: opt.Value})
	}

	return b.reply(i, &discordgo.InteractionResponseData{
		Content: b.messages.Responses.SelectClientType,
		Flags:   discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    joinCustomID(ClientSelectID, flowID),
						Placeholder: "Select Client Type",
						MinValues:   &minValues,
						MaxValues:   1,
						Options:     options,
					},
				},
			},
		},
	})
}

// handleClientSelect is the terminal step: price the cart against the current
// snapshot, send the receipt, fire the invoice webhook and drop the session.
func (b *Bot) handleClientSelect(i *discordgo.InteractionCreate, flowID string) error {
	sess, ok := b.sessions.Get(flowID)
	if !ok {
		return b.replyEphemeral(i, b.messages.Errors.SessionExpired)
	}

	clientType := pricing.ClientType(i.MessageComponentData().Values[0])
	invoice := pricing.Compute(b.catalog.Snapshot(), sess.Items(), clientType)

	if err := b.reply(i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{receiptEmbed(invoice)},
		Flags:  discordgo.MessageFlagsEphemeral,
	}); err != nil {
		return fmt.Errorf("can't send receipt: %w", err)
	}

	b.notifyInvoice(i, invoice)
	b.sessions.Delete(flowID)
	return nil
}

func receiptEmbed(invoice pricing.Invoice) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "✅ Job Submitted",
		Color: colorReceipt,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🛠️ Services", Value: invoice.LineText()},
			{
				Name:  "💵 Total",
				Value: fmt.Sprintf("%s (%s)", pricing.Dollars(invoice.Total), strings.ToUpper(string(invoice.ClientType))),
			},
		},
	}
}
