package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// Cabeçalhos de navegador em português
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36",
	"Accept-Language": "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7",
}

// HTTPFetcher baixa páginas com net/http
type HTTPFetcher struct {
	client  *http.Client
	headers map[string]string
}

// NewHTTPFetcher cria um fetcher com o timeout informado
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client:  &http.Client{Timeout: timeout},
		headers: defaultHeaders,
	}
}

// Fetch faz um GET e devolve o corpo convertido para UTF-8.
// Status diferente de 200 não é erro aqui; quem chama decide.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}

	for key, value := range f.headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, body, nil
	}

	enc, name, _ := charset.DetermineEncoding(body, resp.Header.Get("Content-Type"))
	if name == "utf-8" {
		return resp.StatusCode, body, nil
	}

	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("erro ao converter %s para UTF-8: %w", name, err)
	}
	return resp.StatusCode, decoded, nil
}
