package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"bot-afiliados/config"
	"bot-afiliados/internal/bot"
	"bot-afiliados/internal/logger"
	"bot-afiliados/internal/pipeline"
	"bot-afiliados/internal/ratelimit"
	"bot-afiliados/internal/scraper"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	envErr := godotenv.Load()

	logger.Init()
	log := logger.Default

	if envErr != nil {
		log.Debug().Msg("arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, bot.Init); err != nil {
		log.Fatal().Err(err).Msg("erro ao iniciar o bot")
	}
}

func run(ctx context.Context, log *logger.Logger, initBot func(token string) (*tgbotapi.BotAPI, error)) error {
	// Sem token, chat e tag nada é lido nem baixado
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lines, err := pipeline.ReadInput(cfg.InputFile)
	switch {
	case errors.Is(err, pipeline.ErrInputCreated):
		log.Warn().Str("arquivo", cfg.InputFile).Msg("arquivo não encontrado, exemplo criado. Edite o arquivo e rode novamente")
		return nil
	case errors.Is(err, pipeline.ErrInputEmpty):
		log.Warn().Str("arquivo", cfg.InputFile).Msg("arquivo vazio. Adicione buscas, links ou ASINs de produtos")
		return nil
	case err != nil:
		return err
	}

	telegramBot, err := initBot(cfg.TelegramBotToken)
	if err != nil {
		return err
	}

	limiter := ratelimit.NewFixed(cfg.SendDelay)
	amazon := scraper.NewAmazonScraper(scraper.NewHTTPFetcher(cfg.RequestTimeout), cfg.MaxResults)
	p := pipeline.New(
		amazon,
		bot.NewTelegramNotifier(telegramBot, cfg.TelegramChatID),
		limiter,
		cfg.AmazonTag,
		cfg.DetailLookup,
	)

	log.Info().Int("linhas", len(lines)).Dur("pausa", limiter.Delay()).Msg("iniciando o processamento")

	stats, err := p.Run(ctx, lines)
	if err != nil {
		log.Warn().Err(err).Msg("processamento interrompido")
	}

	log.Info().
		Int("linhas", stats.Lines).
		Int("ignoradas", stats.Skipped).
		Int("produtos", stats.Products).
		Int("enviados", stats.Sent).
		Int("falhas", stats.Failed).
		Msg("processamento concluído")

	return nil
}
