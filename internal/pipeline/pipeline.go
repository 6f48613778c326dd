package pipeline

import (
	"context"
	"strings"

	"bot-afiliados/internal/bot"
	"bot-afiliados/internal/logger"
	"bot-afiliados/internal/models"
	"bot-afiliados/internal/ratelimit"
	"bot-afiliados/internal/scraper"
)

// State é o estado final de uma linha processada
type State int

const (
	StateSkipped State = iota
	StateNotified
)

func (s State) String() string {
	if s == StateSkipped {
		return "ignorada"
	}
	return "notificada"
}

// LineResult resume o processamento de uma linha
type LineResult struct {
	State    State
	Kind     models.Kind
	Products int
	Sent     int
	Failed   int
}

// Stats acumula os resultados de uma execução
type Stats struct {
	Lines    int
	Skipped  int
	Products int
	Sent     int
	Failed   int
}

// Pipeline resolve cada linha de entrada em produtos e envia uma mensagem por produto
type Pipeline struct {
	scraper      scraper.Scraper
	notifier     bot.Notifier
	limiter      ratelimit.Limiter
	tag          string
	detailLookup bool
	log          *logger.Logger
}

// New cria o pipeline. Com detailLookup cada resultado de busca é
// completado com a página do produto antes do envio.
func New(s scraper.Scraper, n bot.Notifier, l ratelimit.Limiter, tag string, detailLookup bool) *Pipeline {
	return &Pipeline{
		scraper:      s,
		notifier:     n,
		limiter:      l,
		tag:          tag,
		detailLookup: detailLookup,
		log:          logger.ForPipeline(),
	}
}

// Run processa as linhas em sequência. Só para antes do fim se o contexto for cancelado.
func (p *Pipeline) Run(ctx context.Context, lines []string) (Stats, error) {
	var stats Stats

	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		result, err := p.ProcessLine(ctx, line)
		stats.Lines++
		if result.State == StateSkipped {
			stats.Skipped++
		}
		stats.Products += result.Products
		stats.Sent += result.Sent
		stats.Failed += result.Failed

		if err != nil {
			return stats, err
		}
	}

	return stats, nil
}

// ProcessLine classifica, resolve e notifica uma linha.
// O erro só é devolvido quando o contexto é cancelado; nesse caso nada
// mais é enviado.
func (p *Pipeline) ProcessLine(ctx context.Context, line string) (LineResult, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return LineResult{State: StateSkipped}, nil
	}

	kind, asin := scraper.Classify(line)
	result := LineResult{State: StateNotified, Kind: kind}
	log := p.log.WithField("linha", line)

	var products []models.Product
	switch kind {
	case models.KindDirect:
		log.Info().Str("asin", asin).Msg("identificado ASIN direto")
		products = []models.Product{p.details(ctx, asin, log)}
	default:
		log.Info().Str("tipo", kind.String()).Msg("identificado como busca")
		found, err := p.scraper.Search(ctx, line)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		if err != nil {
			log.Error().Err(err).Msg("erro ao buscar na Amazon")
		}
		if len(found) == 0 {
			log.Warn().Msg("nenhum produto encontrado nesta busca")
			return result, nil
		}
		log.Info().Int("produtos", len(found)).Msg("produtos encontrados")

		if p.detailLookup {
			found = p.enrich(ctx, found, log)
		}
		products = found
	}

	// Cancelado durante a busca das páginas: os textos padrão não devem ir para o chat
	if err := ctx.Err(); err != nil {
		return result, err
	}

	result.Products = len(products)
	for i, product := range products {
		link := models.AffiliateLink(product.ASIN, p.tag)
		if err := p.notifier.Notify(product, link); err != nil {
			log.Error().Err(err).Str("asin", product.ASIN).Msg("erro ao enviar para o Telegram")
			result.Failed++
		} else {
			log.Debug().Str("asin", product.ASIN).Int("posicao", i+1).Msg("produto enviado")
			result.Sent++
		}

		// Pausa entre envios para não sobrecarregar a Amazon
		if err := p.limiter.Wait(ctx); err != nil {
			return result, err
		}
	}

	return result, nil
}

// Falha na página do produto não impede o envio: seguem os textos padrão.
func (p *Pipeline) details(ctx context.Context, asin string, log *logger.Logger) models.Product {
	product, err := p.scraper.Details(ctx, asin)
	if err != nil {
		log.Error().Err(err).Str("asin", asin).Msg("erro ao obter detalhes, usando textos padrão")
	}
	return product
}

// Troca cada resultado da busca pelo da página do produto, mantendo o da busca se a página falhar.
func (p *Pipeline) enrich(ctx context.Context, found []models.Product, log *logger.Logger) []models.Product {
	enriched := make([]models.Product, 0, len(found))
	for _, listed := range found {
		product, err := p.scraper.Details(ctx, listed.ASIN)
		if ctx.Err() != nil {
			break
		}
		if err != nil {
			log.Warn().Err(err).Str("asin", listed.ASIN).Msg("mantendo dados da busca")
			product = listed
		}
		enriched = append(enriched, product)
	}
	return enriched
}
