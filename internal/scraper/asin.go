package scraper

import (
	"net/url"
	"regexp"
	"strings"

	"bot-afiliados/internal/models"
)

// BaseURL é a loja usada nas buscas e páginas de produto
const BaseURL = "https://www.amazon.com.br"

var asinPattern = regexp.MustCompile(`[A-Z0-9]{10}`)

// ExtractASIN encontra o primeiro trecho de 10 letras maiúsculas/dígitos no texto
func ExtractASIN(text string) (string, bool) {
	asin := asinPattern.FindString(text)
	return asin, asin != ""
}

// IsSearchURL verifica se o texto é uma URL de busca da Amazon
func IsSearchURL(text string) bool {
	return strings.Contains(text, "amazon.com.br/s?")
}

// Classify decide como a linha será resolvida. Um termo de busca que contenha
// por acaso 10 caracteres alfanuméricos maiúsculos é tratado como ASIN.
func Classify(line string) (models.Kind, string) {
	if IsSearchURL(line) {
		return models.KindSearchURL, ""
	}
	asin, ok := ExtractASIN(line)
	if !ok {
		return models.KindSearchQuery, ""
	}
	return models.KindDirect, asin
}

// SearchURL devolve a URL de busca para uma URL ou termo livre
func SearchURL(input string) string {
	return buildSearchURL(BaseURL, input)
}

func buildSearchURL(base, input string) string {
	if IsSearchURL(input) {
		return input
	}
	return base + "/s?k=" + url.QueryEscape(input)
}
