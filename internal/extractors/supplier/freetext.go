package supplier

import (
	"regexp"
	"strings"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
)

// Ensure FreeText implements the interface.
var _ driven.SupplierStrategy = (*FreeText)(nil)

// labelPatterns are tried in order; the first pattern with any match
// wins and lower-priority patterns are not tried. Order matters: the
// bare 供应商 label would otherwise re-match 推荐供应商 lines.
var labelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`推荐供应商\s*[:：]\s*([^\n，,。；;]+)`),
	regexp.MustCompile(`供应商\s*[:：]\s*([^\n，,。；;]+)`),
	regexp.MustCompile(`公司名称\s*[:：]\s*([^\n，,。；;]+)`),
}

// FreeText captures supplier names from label-prefixed plain text such
// as "推荐供应商：华强电子".
type FreeText struct{}

// NewFreeText creates the free-text strategy.
func NewFreeText() *FreeText {
	return &FreeText{}
}

// Name identifies the strategy in logs.
func (f *FreeText) Name() string {
	return "freetext"
}

// Extract tries each label pattern in order and returns the suppliers of
// the first pattern that matches anything.
func (f *FreeText) Extract(text string) []domain.ExtractedSupplier {
	for _, re := range labelPatterns {
		matches := re.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		var out []domain.ExtractedSupplier
		for _, m := range matches {
			sup := domain.ExtractedSupplier{Name: strings.TrimSpace(m[1])}
			if sup.Valid() {
				out = append(out, sup)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
