package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bot-afiliados/internal/apperrors"
	"bot-afiliados/internal/logger"
	"bot-afiliados/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// DefaultMaxResults é quantos resultados de uma busca são aproveitados
const DefaultMaxResults = 10

// AmazonScraper implementa o scraper para a Amazon Brasil
type AmazonScraper struct {
	fetcher    Fetcher
	baseURL    string
	maxResults int
	log        *logger.Logger
}

// NewAmazonScraper cria uma nova instância do scraper da Amazon
func NewAmazonScraper(fetcher Fetcher, maxResults int) *AmazonScraper {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &AmazonScraper{
		fetcher:    fetcher,
		baseURL:    BaseURL,
		maxResults: maxResults,
		log:        logger.ForScraper(),
	}
}

// WithBaseURL troca o host usado para montar buscas e páginas de produto
func (a *AmazonScraper) WithBaseURL(baseURL string) *AmazonScraper {
	a.baseURL = strings.TrimSuffix(baseURL, "/")
	return a
}

// Search busca os primeiros produtos para uma URL de busca ou termo livre
func (a *AmazonScraper) Search(ctx context.Context, input string) ([]models.Product, error) {
	return a.SearchPage(ctx, buildSearchURL(a.baseURL, input))
}

// SearchPage lê uma página de resultados já montada
func (a *AmazonScraper) SearchPage(ctx context.Context, pageURL string) ([]models.Product, error) {
	a.log.Debug().Str("url", pageURL).Msg("buscando produtos")

	page, err := a.fetchPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	products, err := ParseListing(page, a.maxResults)
	if err != nil {
		return nil, apperrors.NewParsing(pageURL, "erro ao ler resultados", err)
	}
	return products, nil
}

// Details busca título e preço da página do produto
func (a *AmazonScraper) Details(ctx context.Context, asin string) (models.Product, error) {
	fallback := models.Product{
		ASIN:  asin,
		Title: models.DetailTitleFallback,
		Price: models.DetailPriceFallback,
	}

	productURL := a.baseURL + "/dp/" + asin
	page, err := a.fetchPage(ctx, productURL)
	if err != nil {
		return fallback, err
	}

	product, err := ParseDetail(page, asin)
	if err != nil {
		return fallback, apperrors.NewParsing(productURL, "erro ao ler página do produto", err)
	}
	return product, nil
}

func (a *AmazonScraper) fetchPage(ctx context.Context, pageURL string) (io.Reader, error) {
	status, body, err := a.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, apperrors.NewNetwork(pageURL, "falha na requisição", err)
	}
	if status != http.StatusOK {
		return nil, apperrors.NewNetwork(pageURL, fmt.Sprintf("HTTP %d", status), nil)
	}
	return bytes.NewReader(body), nil
}

// ParseListing extrai até maxResults produtos dos blocos de resultado da busca,
// na ordem do documento. Blocos sem data-asin são ignorados.
func ParseListing(r io.Reader, maxResults int) ([]models.Product, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	doc.Find("div[data-component-type='s-search-result']").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if len(products) >= maxResults {
			return false
		}

		asin := strings.TrimSpace(s.AttrOr("data-asin", ""))
		if asin == "" {
			return true
		}

		products = append(products, models.Product{
			ASIN:  asin,
			Title: textOrFallback(s.Find("h2"), models.ListingTitleFallback),
			Price: listingPrice(s),
		})
		return true
	})

	return products, nil
}

// Na busca a parte inteira basta; centavos ausentes viram "00".
func listingPrice(s *goquery.Selection) string {
	whole := s.Find("span.a-price-whole").First()
	if whole.Length() > 0 {
		fraction := textOrFallback(s.Find("span.a-price-fraction"), "00")
		return "R$ " + strings.TrimSpace(whole.Text()) + fraction
	}
	return textOrFallback(s.Find("span.a-offscreen"), models.ListingPriceFallback)
}

// ParseDetail extrai título e preço da página de um produto
func ParseDetail(r io.Reader, asin string) (models.Product, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return models.Product{}, err
	}

	return models.Product{
		ASIN:  asin,
		Title: textOrFallback(doc.Find("#productTitle"), models.DetailTitleFallback),
		Price: detailPrice(doc.Selection),
	}, nil
}

// Na página do produto só vale inteiro+centavos juntos; senão usa o preço alternativo.
func detailPrice(s *goquery.Selection) string {
	whole := s.Find("span.a-price-whole").First()
	fraction := s.Find("span.a-price-fraction").First()
	if whole.Length() > 0 && fraction.Length() > 0 {
		return "R$ " + strings.TrimSpace(whole.Text()) + strings.TrimSpace(fraction.Text())
	}
	return textOrFallback(s.Find("span.a-offscreen"), models.DetailPriceFallback)
}

func textOrFallback(sel *goquery.Selection, fallback string) string {
	value := strings.TrimSpace(sel.First().Text())
	if value == "" {
		return fallback
	}
	return value
}
