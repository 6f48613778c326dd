package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bot-afiliados/internal/apperrors"
)

// Config contém as configurações da aplicação
type Config struct {
	TelegramBotToken string
	TelegramChatID   int64
	AmazonTag        string
	InputFile        string
	SendDelay        time.Duration
	MaxResults       int
	RequestTimeout   time.Duration
	DetailLookup     bool
}

// Load carrega as configurações das variáveis de ambiente.
// Token, chat e tag são obrigatórios; a falta de qualquer um é reportada de uma vez.
func Load() (*Config, error) {
	token := firstEnv("TELEGRAM_BOT_TOKEN", "TELEGRAM_TOKEN")
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	tag := os.Getenv("AMAZON_TAG")

	var missing []string
	if token == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if chatIDStr == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if tag == "" {
		missing = append(missing, "AMAZON_TAG")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewConfiguration(
			fmt.Sprintf("configure %s no arquivo .env", strings.Join(missing, ", ")), nil)
	}

	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, apperrors.NewConfiguration("TELEGRAM_CHAT_ID inválido", err)
	}

	cfg := defaults()
	cfg.TelegramBotToken = token
	cfg.TelegramChatID = chatID
	cfg.AmazonTag = tag
	return cfg, nil
}

// LoadSearch carrega apenas o necessário para a busca interativa
func LoadSearch() (*Config, error) {
	tag := os.Getenv("AMAZON_TAG")
	if tag == "" {
		return nil, apperrors.NewConfiguration("AMAZON_TAG não encontrada. Verifique seu arquivo .env", nil)
	}

	cfg := defaults()
	cfg.AmazonTag = tag
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{
		InputFile:      getEnv("INPUT_FILE", "produtos.txt"),
		SendDelay:      2 * time.Second,
		MaxResults:     10,
		RequestTimeout: 30 * time.Second,
	}

	// Pausa entre mensagens
	if v := os.Getenv("SEND_DELAY_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			cfg.SendDelay = time.Duration(parsed) * time.Second
		}
	}

	if v := os.Getenv("MAX_RESULTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.MaxResults = parsed
		}
	}

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.RequestTimeout = time.Duration(parsed) * time.Second
		}
	}

	if v := os.Getenv("DETAIL_LOOKUP"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.DetailLookup = parsed
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
