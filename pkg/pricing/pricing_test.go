package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/session"
)

type priceMap map[string]int64

func (m priceMap) PriceOf(name string) int64 { return m[name] }

var shopPrices = priceMap{"Full Repair": 500, "NOS": 300}

func cart() []session.Item {
	return []session.Item{
		{Name: "Full Repair", Qty: 2},
		{Name: "NOS", Qty: 1},
	}
}

func TestComputeNormalClient(t *testing.T) {
	inv := Compute(shopPrices, cart(), ClientNormal)

	require.Len(t, inv.Lines, 2)
	assert.Equal(t, "• Full Repair x2 = $1,000", inv.Lines[0].String())
	assert.Equal(t, "• NOS x1 = $300", inv.Lines[1].String())
	assert.Equal(t, int64(1300), inv.Subtotal)
	assert.Equal(t, int64(1300), inv.Total)
}

func TestComputeDiscountedClients(t *testing.T) {
	assert.Equal(t, int64(650), Compute(shopPrices, cart(), ClientLSPD).Total)
	assert.Equal(t, int64(650), Compute(shopPrices, cart(), ClientEMS).Total)
}

func TestDiscountTruncatesTowardZero(t *testing.T) {
	prices := priceMap{"LockPick": 333}
	items := []session.Item{{Name: "LockPick", Qty: 1}}

	normal := Compute(prices, items, ClientNormal)
	lspd := Compute(prices, items, ClientLSPD)

	assert.Equal(t, int64(333), normal.Total)
	// 166.5 truncates to 166
	assert.Equal(t, int64(166), lspd.Total)
	assert.Equal(t, normal.Total/2, lspd.Total)
}

func TestUnknownClientTypePaysFullPrice(t *testing.T) {
	inv := Compute(shopPrices, cart(), ClientType("vip"))
	assert.Equal(t, int64(1300), inv.Total)
}

func TestUnknownItemPricesAtZero(t *testing.T) {
	inv := Compute(shopPrices, []session.Item{{Name: "Ghost Part", Qty: 3}}, ClientNormal)
	require.Len(t, inv.Lines, 1)
	assert.Equal(t, int64(0), inv.Total)
}

func TestEmptyCartTotalsZero(t *testing.T) {
	inv := Compute(shopPrices, nil, ClientNormal)
	assert.Empty(t, inv.Lines)
	assert.Equal(t, int64(0), inv.Total)
}

func TestLineText(t *testing.T) {
	inv := Compute(shopPrices, cart(), ClientNormal)
	assert.Equal(t, "• Full Repair x2 = $1,000\n• NOS x1 = $300", inv.LineText())
}

func TestDollars(t *testing.T) {
	assert.Equal(t, "$0", Dollars(0))
	assert.Equal(t, "$300", Dollars(300))
	assert.Equal(t, "$1,000", Dollars(1000))
	assert.Equal(t, "$1,234,567", Dollars(1234567))
}
