package supplier

import (
	"regexp"
	"strings"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
)

// Ensure List implements the interface.
var _ driven.SupplierStrategy = (*List)(nil)

var (
	// numberedItemRe matches numbered items like "1. 【供应商名称】: 华强电子"
	// or "2、公司名称：三和模具". The bracketed label is optional.
	numberedItemRe = regexp.MustCompile(`(?m)^\s*\d+\s*[.、]\s*[【\[]?([^】\]:：\n]+?)[】\]]?\s*[:：]\s*(\S[^\n]*)$`)

	// dashItemRe matches dash bullets like "- **供应商名称**: 华强电子".
	dashItemRe = regexp.MustCompile(`(?m)^\s*-\s*\*\*([^*\n]+?)\*\*\s*[:：]\s*(\S[^\n]*)$`)
)

// nameLabels are the substrings a field label must contain for the value
// to count as a supplier name.
var nameLabels = []string{"名称", "供应商", "公司"}

// List parses numbered and dash-bulleted list items. Both sweeps run
// over the whole text independently and their matches are unioned.
type List struct{}

// NewList creates the list strategy.
func NewList() *List {
	return &List{}
}

// Name identifies the strategy in logs.
func (l *List) Name() string {
	return "list"
}

// Extract runs both regex sweeps and unions their results.
func (l *List) Extract(text string) []domain.ExtractedSupplier {
	var out []domain.ExtractedSupplier
	out = append(out, sweep(numberedItemRe, text)...)
	out = append(out, sweep(dashItemRe, text)...)
	return out
}

// sweep collects suppliers from all matches of one item pattern whose
// label names a supplier.
func sweep(re *regexp.Regexp, text string) []domain.ExtractedSupplier {
	var out []domain.ExtractedSupplier
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		label, value := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if !isNameLabel(label) {
			continue
		}
		sup := domain.ExtractedSupplier{Name: value}
		if sup.Valid() {
			out = append(out, sup)
		}
	}
	return out
}

func isNameLabel(label string) bool {
	for _, want := range nameLabels {
		if strings.Contains(label, want) {
			return true
		}
	}
	return false
}
