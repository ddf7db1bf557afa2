package pricing

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/session"
)

// ClientType is the discount tier a checkout is priced under.
type ClientType string

const (
	ClientNormal ClientType = "normal"
	ClientLSPD   ClientType = "lspd"
	ClientEMS    ClientType = "ems"
)

var discounts = map[ClientType]decimal.Decimal{
	ClientNormal: decimal.NewFromInt(1),
	ClientLSPD:   decimal.NewFromFloat(0.5),
	ClientEMS:    decimal.NewFromFloat(0.5),
}

// Discount returns the multiplier for a client type; unknown types pay full
// price.
func Discount(clientType ClientType) decimal.Decimal {
	if d, ok := discounts[clientType]; ok {
		return d
	}
	return decimal.NewFromInt(1)
}

// PriceList is the read side of the catalog the calculator needs.
type PriceList interface {
	PriceOf(name string) int64
}

type Line struct {
	Name   string
	Qty    int64
	Amount int64
}

func (l Line) String() string {
	return fmt.Sprintf("• %s x%d = %s", l.Name, l.Qty, Dollars(l.Amount))
}

type Invoice struct {
	ClientType ClientType
	Lines      []Line
	Subtotal   int64
	Total      int64
}

// LineText renders the invoice lines one per row, for embeds.
func (inv Invoice) LineText() string {
	lines := make([]string, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, l.String())
	}
	return strings.Join(lines, "\n")
}

// Compute prices a cart. Unit prices are read from the price list at call
// time, not from the session, so a catalog reload between selection and
// checkout is reflected in the result. The total is the discounted subtotal
// truncated toward zero.
func Compute(prices PriceList, items []session.Item, clientType ClientType) Invoice {
	inv := Invoice{ClientType: clientType}

	for _, item := range items {
		amount := prices.PriceOf(item.Name) * item.Qty
		inv.Lines = append(inv.Lines, Line{Name: item.Name, Qty: item.Qty, Amount: amount})
		inv.Subtotal += amount
	}

	inv.Total = decimal.NewFromInt(inv.Subtotal).Mul(Discount(clientType)).IntPart()
	return inv
}

// Dollars formats an amount as $1,234.
func Dollars(amount int64) string {
	return "$" + humanize.Comma(amount)
}
