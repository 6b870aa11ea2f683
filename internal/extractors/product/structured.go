package product

import (
	"strings"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/extractors/fields"
)

// Ensure Structured implements the interface.
var _ driven.ProductStrategy = (*Structured)(nil)

// Structured parses fenced JSON blocks (or the whole message as one JSON
// document) into products, resolving field names through the product
// alias table. Candidates without a name, or with neither a positive
// price nor a purchase URL, are skipped.
type Structured struct{}

// NewStructured creates the structured-format strategy.
func NewStructured() *Structured {
	return &Structured{}
}

// Name identifies the strategy in logs.
func (s *Structured) Name() string {
	return "structured"
}

// Extract decodes every fenced block, or the whole text when none exist.
func (s *Structured) Extract(text string) []domain.ExtractedProduct {
	candidates := fields.FencedBlocks(text)
	if candidates == nil {
		candidates = []string{strings.TrimSpace(text)}
	}

	var out []domain.ExtractedProduct
	for _, candidate := range candidates {
		for _, obj := range fields.Objects(candidate) {
			p := fromObject(obj)
			if p.Acceptable() {
				out = append(out, p)
			}
		}
	}
	return out
}

// fromObject maps one decoded object to a product via the alias table.
func fromObject(obj map[string]any) domain.ExtractedProduct {
	name := fields.ResolveString(obj, "name", "productName", "title", "商品名称", "名称", "标题")
	purchaseURL := fields.ResolveString(obj, "purchaseUrl", "url", "link", "购买链接", "链接")

	var price float64
	if v, ok := fields.Resolve(obj, "price", "商品价格", "价格"); ok {
		price = fields.Amount(v)
	}

	p := domain.NewProduct(name, price, purchaseURL)
	p.Description = fields.ResolveString(obj, "description", "描述", "商品描述")
	p.ImageURL = fields.ResolveString(obj, "imageUrl", "image", "图片")
	p.Category = fields.ResolveString(obj, "category", "分类", "类目")
	p.Brand = fields.ResolveString(obj, "brand", "品牌")
	p.Specifications = fields.StringMap(obj, "specifications", "specs", "规格")
	p.Tags = fields.StringList(obj, "tags", "标签")
	p.Notes = fields.ResolveString(obj, "notes", "备注")
	if currency := fields.ResolveString(obj, "currency", "币种"); currency != "" {
		p.Currency = currency
	}
	return p
}
