package scraper

import (
	"context"

	"bot-afiliados/internal/models"
)

// Scraper define a interface usada pelo processamento para resolver produtos
type Scraper interface {
	// Search resolve uma URL de busca ou termo livre nos primeiros resultados
	Search(ctx context.Context, input string) ([]models.Product, error)
	// Details busca título e preço na página do produto. Em caso de erro
	// o produto retornado vem com os textos padrão preenchidos.
	Details(ctx context.Context, asin string) (models.Product, error)
}

// Fetcher baixa uma página e devolve status e corpo
type Fetcher interface {
	Fetch(ctx context.Context, url string) (int, []byte, error)
}
