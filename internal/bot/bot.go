package bot

import (
	"fmt"

	"bot-afiliados/internal/apperrors"
	"bot-afiliados/internal/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Init inicializa o bot do Telegram
func Init(token string) (*tgbotapi.BotAPI, error) {
	return InitWithEndpoint(token, tgbotapi.APIEndpoint, nil)
}

// InitWithEndpoint inicializa o bot apontando para outro endpoint da API.
// client nil usa o http.Client padrão.
func InitWithEndpoint(token, endpoint string, client tgbotapi.HTTPClient) (*tgbotapi.BotAPI, error) {
	if token == "" {
		return nil, apperrors.NewConfiguration("TELEGRAM_BOT_TOKEN não configurado. Verifique o arquivo .env", nil)
	}

	var (
		bot *tgbotapi.BotAPI
		err error
	)
	if client == nil {
		bot, err = tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	} else {
		bot, err = tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	}
	if err != nil {
		if err.Error() == "Unauthorized" {
			return nil, apperrors.NewConfiguration("token do Telegram inválido ou expirado. Para obter um token, fale com @BotFather no Telegram", err)
		}
		return nil, fmt.Errorf("erro ao conectar com Telegram: %w", err)
	}

	bot.Debug = false
	logger.ForNotifier().Info().Str("bot", bot.Self.UserName).Msg("bot autorizado")
	return bot, nil
}
