package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"bot-afiliados/config"
	"bot-afiliados/internal/logger"
	"bot-afiliados/internal/models"
	"bot-afiliados/internal/scraper"

	"github.com/joho/godotenv"
)

const separator = "------------------------------------------------------------"

func main() {
	// Carregar variáveis de ambiente
	envErr := godotenv.Load()

	logger.Init()
	log := logger.Default

	if envErr != nil {
		log.Debug().Msg("arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	cfg, err := config.LoadSearch()
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao carregar configurações")
	}

	url, err := prompt(os.Stdin, os.Stdout)
	if err != nil || url == "" {
		fmt.Println("URL inválida.")
		return
	}

	fmt.Printf("Buscando produtos em: %s\n\n", url)

	amazon := scraper.NewAmazonScraper(scraper.NewHTTPFetcher(cfg.RequestTimeout), cfg.MaxResults)
	products, err := amazon.SearchPage(context.Background(), url)
	if err != nil {
		log.Error().Err(err).Msg("erro ao raspar a página")
	}

	if len(products) == 0 {
		fmt.Println("Nenhum produto encontrado. Verifique a URL.")
		return
	}

	printProducts(os.Stdout, products, cfg.AmazonTag)
}

func prompt(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Cole a URL de pesquisa da Amazon: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// printProducts imprime a lista numerada com o link de afiliado de cada produto
func printProducts(w io.Writer, products []models.Product, tag string) {
	fmt.Fprintf(w, "✅ Encontrados %d produtos top!\n\n", len(products))
	fmt.Fprintln(w, separator)

	for i, p := range products {
		fmt.Fprintf(w, "%d. %s\n", i+1, p.Title)
		fmt.Fprintf(w, "   Preço: %s\n", p.Price)
		fmt.Fprintf(w, "   Link Afiliado: %s\n", models.AffiliateLink(p.ASIN, tag))
		fmt.Fprintln(w, separator)
	}
}
