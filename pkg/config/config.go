package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the bot needs at startup. The token comes from
// the environment, the rest from configs/main.yml with defaults applied, so
// running without a config file works.
type Config struct {
	Token string

	PricesFile   string        `mapstructure:"prices_file"`
	SettingsFile string        `mapstructure:"settings_file"`
	FlowTTL      time.Duration `mapstructure:"flow_ttl"`
	CheckoutTTL  time.Duration `mapstructure:"checkout_ttl"`

	Messages Messages
}

type Messages struct {
	Responses Responses
	Errors    Errors
}

type Responses struct {
	SetupSaved        string `mapstructure:"setup_saved"`
	PanelGreeting     string `mapstructure:"panel_greeting"`
	SelectItems       string `mapstructure:"select_items"`
	SelectClientType  string `mapstructure:"select_client_type"`
	QuantitiesUpdated string `mapstructure:"quantities_updated"`
	PricesReloaded    string `mapstructure:"prices_reloaded"`
}

type Errors struct {
	EmptyCart       string `mapstructure:"empty_cart"`
	NoSelection     string `mapstructure:"no_selection"`
	TooManySelected string `mapstructure:"too_many_selected"`
	SessionExpired  string `mapstructure:"session_expired"`
	CategoryEmpty   string `mapstructure:"category_empty"`
}

func Init() (*Config, error) {
	setDefaults()

	viper.SetConfigName("main")
	viper.AddConfigPath("configs")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("can't read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("can't unmarshal config: %w", err)
	}
	if err := viper.UnmarshalKey("messages.responses", &cfg.Messages.Responses); err != nil {
		return nil, fmt.Errorf("can't unmarshal response messages: %w", err)
	}
	if err := viper.UnmarshalKey("messages.errors", &cfg.Messages.Errors); err != nil {
		return nil, fmt.Errorf("can't unmarshal error messages: %w", err)
	}

	cfg.Token = os.Getenv("DISCORD_TOKEN")
	if cfg.Token == "" {
		return nil, errors.New("DISCORD_TOKEN not found in environment or .env")
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("prices_file", "prices.json")
	viper.SetDefault("settings_file", "server_settings.json")
	viper.SetDefault("flow_ttl", 180*time.Second)
	viper.SetDefault("checkout_ttl", 120*time.Second)

	viper.SetDefault("messages.responses.setup_saved", "✅ Setup saved! Deploying panels...")
	viper.SetDefault("messages.responses.panel_greeting", "👋 **Mechanic Dashboard**\nSelect a category below to start an order:")
	viper.SetDefault("messages.responses.select_items", "**%s** - Select items:")
	viper.SetDefault("messages.responses.select_client_type", "Select Client Type:")
	viper.SetDefault("messages.responses.quantities_updated", "✅ Quantities updated! Click **Checkout** to finish.")
	viper.SetDefault("messages.responses.prices_reloaded", "✅ Price list reloaded: %d items.")

	viper.SetDefault("messages.errors.empty_cart", "⚠️ Cart is empty.")
	viper.SetDefault("messages.errors.no_selection", "⚠️ Select at least one job first!")
	viper.SetDefault("messages.errors.too_many_selected", "⚠️ You can only edit 5 items at a time due to Discord limits.")
	viper.SetDefault("messages.errors.session_expired", "⚠️ This order has expired, please start again from the dashboard.")
	viper.SetDefault("messages.errors.category_empty", "⚠️ Nothing is available in this category right now.")
}
