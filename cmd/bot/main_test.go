package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"bot-afiliados/internal/apperrors"
	"bot-afiliados/internal/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TELEGRAM_BOT_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID", "AMAZON_TAG"} {
		t.Setenv(key, "")
	}
}

func TestRunMissingConfigStopsBeforeInputAndTelegram(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "nada configurado", env: map[string]string{}},
		{name: "sem tag", env: map[string]string{"TELEGRAM_BOT_TOKEN": "123:abc", "TELEGRAM_CHAT_ID": "-100200300"}},
		{name: "sem chat", env: map[string]string{"TELEGRAM_BOT_TOKEN": "123:abc", "AMAZON_TAG": "mytag-20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			input := filepath.Join(t.TempDir(), "produtos.txt")
			t.Setenv("INPUT_FILE", input)

			initCalls := 0
			initBot := func(token string) (*tgbotapi.BotAPI, error) {
				initCalls++
				return nil, apperrors.NewConfiguration("não deveria ser chamado", nil)
			}

			err := run(context.Background(), logger.New(&bytes.Buffer{}), initBot)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.TypeConfiguration))

			_, statErr := os.Stat(input)
			assert.True(t, os.IsNotExist(statErr), "arquivo de entrada não deveria ser criado")
			assert.Zero(t, initCalls)
		})
	}
}

func TestRunCreatesSampleInputWithoutTelegram(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200300")
	t.Setenv("AMAZON_TAG", "mytag-20")
	input := filepath.Join(t.TempDir(), "produtos.txt")
	t.Setenv("INPUT_FILE", input)

	initCalls := 0
	initBot := func(token string) (*tgbotapi.BotAPI, error) {
		initCalls++
		return nil, nil
	}

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), logger.New(&buf), initBot))

	_, err := os.Stat(input)
	require.NoError(t, err)
	assert.Zero(t, initCalls)
	assert.Contains(t, buf.String(), "exemplo criado")
}
