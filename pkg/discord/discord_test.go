package discord

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/catalog"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/config"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/pricing"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/session"
)

func testBot(t *testing.T) *Bot {
	t.Helper()
	store := session.NewStore(time.Minute)
	t.Cleanup(store.Close)
	return &Bot{
		sessions: store,
		messages: config.Messages{
			Errors: config.Errors{
				EmptyCart:       "⚠️ Cart is empty.",
				NoSelection:     "⚠️ Select at least one job first!",
				TooManySelected: "⚠️ You can only edit 5 items at a time due to Discord limits.",
			},
		},
	}
}

func loadSnapshot(t *testing.T, content string) *catalog.Snapshot {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	store, err := catalog.Load(path)
	require.NoError(t, err)
	return store.Snapshot()
}

func TestCustomIDRoundTrip(t *testing.T) {
	id := joinCustomID(ItemSelectID, "flow-123")
	assert.Equal(t, "order_items:flow-123", id)

	action, flowID := splitCustomID(id)
	assert.Equal(t, ItemSelectID, action)
	assert.Equal(t, "flow-123", flowID)
}

func TestSplitCustomIDWithoutFlow(t *testing.T) {
	action, flowID := splitCustomID(CategorySelectID)
	assert.Equal(t, CategorySelectID, action)
	assert.Empty(t, flowID)
}

func TestParseWebhookURL(t *testing.T) {
	id, token, err := ParseWebhookURL("https://discord.com/api/webhooks/123456789/abc-DEF_ghi")
	require.NoError(t, err)
	assert.Equal(t, "123456789", id)
	assert.Equal(t, "abc-DEF_ghi", token)

	id, _, err = ParseWebhookURL("https://discordapp.com/api/webhooks/42/tok")
	require.NoError(t, err)
	assert.Equal(t, "42", id)

	_, _, err = ParseWebhookURL("https://example.com/not-a-webhook")
	assert.Error(t, err)

	_, _, err = ParseWebhookURL("")
	assert.Error(t, err)
}

func TestItemOptionsOffersOnlyAvailableItems(t *testing.T) {
	snap := loadSnapshot(t, `{"Full Repair": 500, "Repair Kit": "broken", "HG Full Repair": 800}`)

	options := itemOptions(snap, "Repair Jobs")
	require.Len(t, options, 2)
	assert.Equal(t, "Full Repair", options[0].Label)
	assert.Equal(t, "Full Repair", options[0].Value)
	assert.Equal(t, "HG Full Repair", options[1].Label)
}

func TestItemOptionsEmptyCategory(t *testing.T) {
	snap := loadSnapshot(t, `{}`)
	assert.Empty(t, itemOptions(snap, "Repair Jobs"))
}

func TestReceiptEmbed(t *testing.T) {
	inv := pricing.Compute(
		loadSnapshot(t, `{"Full Repair": 500, "NOS": 300}`),
		[]session.Item{{Name: "Full Repair", Qty: 2}, {Name: "NOS", Qty: 1}},
		pricing.ClientLSPD,
	)

	embed := receiptEmbed(inv)
	assert.Equal(t, "✅ Job Submitted", embed.Title)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "• Full Repair x2 = $1,000\n• NOS x1 = $300", embed.Fields[0].Value)
	assert.Equal(t, "$650 (LSPD)", embed.Fields[1].Value)
}

func TestPriceListEmbed(t *testing.T) {
	snap := loadSnapshot(t, `{"Full Repair": 500, "LockPick": 50, "Turbo": 900}`)

	embed := priceListEmbed(snap)
	assert.Equal(t, "💰 Paleto Tuners Price List", embed.Title)

	fields := make(map[string]string, len(embed.Fields))
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
	}

	assert.Contains(t, fields["Repair Jobs"], "• **Full Repair** — $500")
	assert.Contains(t, fields["Repair Jobs"], "• ~Repair Kit~ — **N/A**")
	assert.Contains(t, fields["🚗 Upgrades"], "• **Turbo** — $900")
	// unavailable upgrades are omitted, not struck through
	assert.NotContains(t, fields["🚗 Upgrades"], "Engine 1")
}

func TestPriceListEmbedUpgradesNone(t *testing.T) {
	embed := priceListEmbed(loadSnapshot(t, `{}`))

	var upgrades string
	for _, f := range embed.Fields {
		if f.Name == "🚗 Upgrades" {
			upgrades = f.Value
		}
	}
	assert.Equal(t, "None", upgrades)
}

func TestQuantityEditRejections(t *testing.T) {
	b := testBot(t)
	sess := b.sessions.Create("Upgrades")

	// nothing selected yet
	assert.Equal(t, b.messages.Errors.NoSelection, b.quantityEditReject(sess))

	sess.SetSelected([]string{"Engine 1", "Engine 2", "Engine 3", "Suspension 1", "Suspension 2", "Turbo"})
	assert.Equal(t, b.messages.Errors.TooManySelected, b.quantityEditReject(sess))

	sess.SetSelected([]string{"Engine 1", "Engine 2", "Engine 3", "Suspension 1", "Suspension 2"})
	assert.Empty(t, b.quantityEditReject(sess))

	sess.SetSelected([]string{"Engine 1"})
	assert.Empty(t, b.quantityEditReject(sess))
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	b := testBot(t)
	sess := b.sessions.Create("Repair Jobs")

	assert.Equal(t, b.messages.Errors.EmptyCart, b.checkoutReject(sess))

	sess.SetSelected([]string{"Full Repair"})
	assert.Empty(t, b.checkoutReject(sess))
}

func TestPanelComponents(t *testing.T) {
	components := panelComponents()
	require.Len(t, components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	require.True(t, ok)

	assert.Equal(t, CategorySelectID, menu.CustomID)
	require.Len(t, menu.Options, 4)
	assert.Equal(t, "Repair Jobs", menu.Options[0].Value)
	assert.Equal(t, "Upgrades", menu.Options[2].Value)
}
