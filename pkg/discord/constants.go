package discord

const (
	SetupCmd  = "setup_paleto"
	ReloadCmd = "reload_prices"
)

// Component custom IDs. Flow-scoped components carry the flow ID after the
// separator so the dispatcher can find the session; the category select on
// the deployed panel is flow-less and keeps working across restarts.
const (
	CategorySelectID = "order_category"
	ItemSelectID     = "order_items"
	EditQtyButtonID  = "order_editqty"
	CheckoutButtonID = "order_checkout"
	ClientSelectID   = "order_client"
	QuantityModalID  = "order_qtymodal"

	customIDSep = ":"
)

// Platform ceilings: a select menu holds at most 25 options, a modal at most
// 5 text inputs.
const (
	maxSelectOptions = 25
	maxModalInputs   = 5
)

const (
	colorReceipt   = 0x27ae60
	colorInvoice   = 0x00b894
	colorPriceList = 0x00aaff
)

const webhookUsername = "Paleto Bot Logs"

// panelCategories is the fixed set offered on the ordering panel. Communication
// and Cosmetics appear only in the price list.
var panelCategories = []struct {
	Name  string
	Emoji string
}{
	{"Repair Jobs", "🔧"},
	{"Lockpick Tools", "🛠️"},
	{"Upgrades", "🚗"},
	{"Performance Parts", "🏁"},
}

var clientTypeOptions = []struct {
	Label string
	Value string
}{
	{"Normal Customer", "normal"},
	{"LSPD (50% Off)", "lspd"},
	{"EMS (50% Off)", "ems"},
}
