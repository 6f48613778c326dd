package bot

import (
	"fmt"
	"strings"

	"bot-afiliados/internal/apperrors"
	"bot-afiliados/internal/logger"
	"bot-afiliados/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier entrega a mensagem de um produto
type Notifier interface {
	Notify(product models.Product, link string) error
}

// TelegramNotifier envia mensagens para um chat fixo
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *logger.Logger
}

// NewTelegramNotifier cria um notifier que envia para chatID
func NewTelegramNotifier(bot *tgbotapi.BotAPI, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
		log:    logger.ForNotifier(),
	}
}

// Notify faz um único sendMessage com parse_mode HTML
func (n *TelegramNotifier) Notify(product models.Product, link string) error {
	msg := tgbotapi.NewMessage(n.chatID, FormatMessage(product, link))
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := n.bot.Send(msg); err != nil {
		return apperrors.NewDelivery("telegram", fmt.Sprintf("erro ao enviar %s", product.ASIN), err)
	}

	n.log.Info().Str("asin", product.ASIN).Msg("mensagem enviada para o Telegram")
	return nil
}

// FormatMessage monta o texto enviado ao Telegram
func FormatMessage(product models.Product, link string) string {
	return fmt.Sprintf(
		"🛒 <b>%s</b>\n\n"+
			"💰 Preço: %s\n\n"+
			"🔗 Compre pelo link de afiliado:\n%s",
		escapeHTML(product.Title),
		escapeHTML(product.Price),
		link,
	)
}

// escapeHTML escapa caracteres especiais do HTML
func escapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}
