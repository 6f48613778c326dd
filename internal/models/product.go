package models

// ProductURL é a base do link de um produto na Amazon Brasil
const ProductURL = "https://www.amazon.com.br/dp/"

// Textos usados quando a página não traz o campo
const (
	ListingTitleFallback = "Produto sem título"
	ListingPriceFallback = "Preço indisponível"
	DetailTitleFallback  = "Produto Amazon"
	DetailPriceFallback  = "Verificar no site"
)

// Product representa um produto encontrado na Amazon
type Product struct {
	ASIN  string
	Title string
	Price string // já formatado, ex: "R$ 29,90"
}

// AffiliateLink monta o link de afiliado do produto
func AffiliateLink(asin, tag string) string {
	return ProductURL + asin + "?tag=" + tag
}

// Kind indica como uma linha do arquivo de entrada deve ser resolvida
type Kind int

const (
	KindDirect Kind = iota
	KindSearchURL
	KindSearchQuery
)

func (k Kind) String() string {
	switch k {
	case KindDirect:
		return "asin"
	case KindSearchURL:
		return "url de busca"
	case KindSearchQuery:
		return "termo de busca"
	default:
		return "desconhecido"
	}
}
