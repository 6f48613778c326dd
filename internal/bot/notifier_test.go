package bot

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"bot-afiliados/internal/apperrors"
	"bot-afiliados/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	chatID    string
	text      string
	parseMode string
}

// fakeTelegram imita os métodos getMe e sendMessage da Bot API
type fakeTelegram struct {
	mu       sync.Mutex
	sent     []sentMessage
	failSend bool
}

func (f *fakeTelegram) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			if !strings.HasPrefix(r.URL.Path, "/bot123:abc/") {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"ok":false,"error_code":401,"description":"Unauthorized"}`)
				return
			}
			fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Ofertas","username":"ofertas_bot"}}`)
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			if f.failSend {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprint(w, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
				return
			}
			f.mu.Lock()
			f.sent = append(f.sent, sentMessage{
				chatID:    r.FormValue("chat_id"),
				text:      r.FormValue("text"),
				parseMode: r.FormValue("parse_mode"),
			})
			f.mu.Unlock()
			fmt.Fprint(w, `{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":-100200300,"type":"group"}}}`)
		default:
			http.NotFound(w, r)
		}
	}
}

func newFakeTelegram(t *testing.T) (*fakeTelegram, *httptest.Server) {
	fake := &fakeTelegram{}
	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)
	return fake, server
}

func TestFormatMessage(t *testing.T) {
	product := models.Product{ASIN: "B07XQXZXJC", Title: "Kit <Panelas> & Tampas", Price: "R$ 2990"}

	expected := "🛒 <b>Kit &lt;Panelas&gt; &amp; Tampas</b>\n\n" +
		"💰 Preço: R$ 2990\n\n" +
		"🔗 Compre pelo link de afiliado:\nhttps://www.amazon.com.br/dp/B07XQXZXJC?tag=mytag-20"

	assert.Equal(t, expected, FormatMessage(product, models.AffiliateLink("B07XQXZXJC", "mytag-20")))
}

func TestInitWithEndpoint(t *testing.T) {
	_, server := newFakeTelegram(t)
	endpoint := server.URL + "/bot%s/%s"

	bot, err := InitWithEndpoint("123:abc", endpoint, nil)
	require.NoError(t, err)
	assert.Equal(t, "ofertas_bot", bot.Self.UserName)

	_, err = InitWithEndpoint("999:errado", endpoint, nil)
	require.Error(t, err)

	_, err = InitWithEndpoint("", endpoint, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeConfiguration))
}

func TestTelegramNotifierNotify(t *testing.T) {
	fake, server := newFakeTelegram(t)
	bot, err := InitWithEndpoint("123:abc", server.URL+"/bot%s/%s", server.Client())
	require.NoError(t, err)

	notifier := NewTelegramNotifier(bot, -100200300)
	product := models.Product{ASIN: "B07XQXZXJC", Title: "Escorredor", Price: "R$ 2990"}
	link := models.AffiliateLink(product.ASIN, "mytag-20")

	require.NoError(t, notifier.Notify(product, link))

	require.Len(t, fake.sent, 1)
	assert.Equal(t, "-100200300", fake.sent[0].chatID)
	assert.Equal(t, "HTML", fake.sent[0].parseMode)
	assert.Equal(t, FormatMessage(product, link), fake.sent[0].text)
}

func TestTelegramNotifierDeliveryFailure(t *testing.T) {
	fake, server := newFakeTelegram(t)
	bot, err := InitWithEndpoint("123:abc", server.URL+"/bot%s/%s", nil)
	require.NoError(t, err)
	fake.failSend = true

	err = NewTelegramNotifier(bot, 1).Notify(models.Product{ASIN: "B07XQXZXJC"}, "link")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeDelivery))
	assert.Empty(t, fake.sent)
}
