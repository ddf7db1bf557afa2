package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/catalog"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/config"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/discord"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/session"
	"github.com/CrazyAlex15/PaletoBot-PriceCalculator-Bot/pkg/storage/jsonfile"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Init()
	if err != nil {
		log.Println("Error:", err)
		os.Exit(1)
	}

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	catalogStore, err := catalog.Load(cfg.PricesFile)
	if err != nil {
		logger.Fatalf("can't load catalog: %v", err)
	}
	logger.Infof("catalog loaded: %d items", catalogStore.Snapshot().Len())

	settingsStore := jsonfile.New(cfg.SettingsFile)
	sessions := session.NewStore(cfg.FlowTTL)

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		logger.Fatalf("can't create discord session: %v", err)
	}

	bot := discord.NewBot(dg, catalogStore, settingsStore, sessions, cfg, logger)
	if err := bot.Start(); err != nil {
		logger.Fatalf("can't start bot: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := bot.Stop(); err != nil {
		logger.Errorf("can't stop bot: %v", err)
	}
}
