package product

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
)

// Ensure FreeText implements the interface.
var _ driven.ProductStrategy = (*FreeText)(nil)

var (
	// urlRe matches an http(s) URL up to whitespace or closing
	// punctuation.
	urlRe = regexp.MustCompile(`https?://[^\s，,。；;）)】\]"'<>]+`)

	// priceRe matches a currency-marked amount: "¥99.5", "￥ 99" or
	// "99元". Group 1 captures the prefixed form, group 2 the suffixed
	// form.
	priceRe = regexp.MustCompile(`[¥￥]\s*([0-9]+(?:\.[0-9]+)?)|([0-9]+(?:\.[0-9]+)?)\s*元`)

	// leadMarkerRe strips list markers like "1. ", "- ", "• " off the
	// front of a line.
	leadMarkerRe = regexp.MustCompile(`^[\s\-*•·\d.、）)]+`)
)

// nameTrimCutset removes separators and markdown decoration left at the
// edge of a captured name.
const nameTrimCutset = " \t：:，,。；;、—*（(【["

// FreeText captures products from plain lines of the form "name,
// optional currency-marked price, optional URL". Only the first price
// and first URL on a line are used; lines describing several products
// at once are out of scope.
type FreeText struct{}

// NewFreeText creates the free-text strategy.
func NewFreeText() *FreeText {
	return &FreeText{}
}

// Name identifies the strategy in logs.
func (f *FreeText) Name() string {
	return "freetext"
}

// Extract applies the line pattern to every non-blank line. A line only
// yields a product when a name is present together with a positive
// price or a URL.
func (f *FreeText) Extract(text string) []domain.ExtractedProduct {
	var out []domain.ExtractedProduct
	for _, line := range strings.Split(text, "\n") {
		if p, ok := parseLine(line); ok {
			out = append(out, p)
		}
	}
	return out
}

func parseLine(line string) (domain.ExtractedProduct, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.ExtractedProduct{}, false
	}

	urlLoc := urlRe.FindStringIndex(line)
	priceLoc := priceRe.FindStringSubmatchIndex(line)
	if urlLoc == nil && priceLoc == nil {
		return domain.ExtractedProduct{}, false
	}

	purchaseURL := ""
	nameEnd := len(line)
	if urlLoc != nil {
		purchaseURL = line[urlLoc[0]:urlLoc[1]]
		nameEnd = urlLoc[0]
	}

	var price float64
	if priceLoc != nil {
		raw := ""
		if priceLoc[2] >= 0 {
			raw = line[priceLoc[2]:priceLoc[3]]
		} else if priceLoc[4] >= 0 {
			raw = line[priceLoc[4]:priceLoc[5]]
		}
		price, _ = strconv.ParseFloat(raw, 64)
		if priceLoc[0] < nameEnd {
			nameEnd = priceLoc[0]
		}
	}

	name := leadMarkerRe.ReplaceAllString(line[:nameEnd], "")
	name = strings.ReplaceAll(name, "**", "")
	name = strings.Trim(name, nameTrimCutset)
	if name == "" {
		return domain.ExtractedProduct{}, false
	}

	p := domain.NewProduct(name, price, purchaseURL)
	if !p.Acceptable() {
		return domain.ExtractedProduct{}, false
	}
	return p, true
}
