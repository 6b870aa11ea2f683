package supplier

import (
	"strings"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/extractors/fields"
)

// Ensure Structured implements the interface.
var _ driven.SupplierStrategy = (*Structured)(nil)

// Structured parses fenced JSON blocks (or the whole message as one JSON
// document) into suppliers. Field names are resolved through an alias
// table: target English key first, legacy English key next, Chinese
// label last. Candidates failing validation are skipped without aborting
// the strategy.
type Structured struct{}

// NewStructured creates the structured-format strategy.
func NewStructured() *Structured {
	return &Structured{}
}

// Name identifies the strategy in logs.
func (s *Structured) Name() string {
	return "structured"
}

// Extract scans for fenced blocks and decodes each as a JSON object or
// array of objects. With no fenced block the whole text is the single
// candidate. Invalid syntax in one candidate produces nothing and the
// scan moves on.
func (s *Structured) Extract(text string) []domain.ExtractedSupplier {
	candidates := fields.FencedBlocks(text)
	if candidates == nil {
		candidates = []string{strings.TrimSpace(text)}
	}

	var out []domain.ExtractedSupplier
	for _, candidate := range candidates {
		for _, obj := range fields.Objects(candidate) {
			sup := fromObject(obj)
			if sup.Valid() {
				out = append(out, sup)
			}
		}
	}
	return out
}

// fromObject maps one decoded object to a supplier via the alias table.
func fromObject(obj map[string]any) domain.ExtractedSupplier {
	sup := domain.ExtractedSupplier{
		Name:              fields.ResolveString(obj, "name", "supplierName", "companyName", "供应商名称", "公司名称", "名称"),
		FoundedDate:       fields.ResolveString(obj, "foundedDate", "founded", "成立时间", "成立日期"),
		BusinessDirection: fields.StringList(obj, "businessDirection", "business", "主营业务", "业务方向"),
		Website:           fields.ResolveString(obj, "website", "site", "官网", "网站"),
		SourceNote:        fields.ResolveString(obj, "sourceNote", "source", "信源", "来源"),
		ContactInfo:       contactFrom(obj),
	}

	for _, c := range fields.ObjectList(obj, "customerCases", "cases", "客户案例") {
		sup.CustomerCases = append(sup.CustomerCases, domain.CustomerCase{
			Title:       fields.ResolveString(c, "title", "标题"),
			Description: fields.ResolveString(c, "description", "描述"),
			Year:        fields.ResolveString(c, "year", "年份"),
		})
	}
	return sup
}

// contactFrom assembles contact info from a nested contact object when
// present, falling back to flat top-level keys. Returns nil when no
// contact field was found at all.
func contactFrom(obj map[string]any) *domain.ContactInfo {
	sources := make([]map[string]any, 0, 2)
	if v, ok := fields.Resolve(obj, "contactInfo", "contact", "联系方式"); ok {
		if nested, ok := v.(map[string]any); ok {
			sources = append(sources, nested)
		}
	}
	sources = append(sources, obj)

	pick := func(keys ...string) string {
		for _, src := range sources {
			if s := fields.ResolveString(src, keys...); s != "" {
				return s
			}
		}
		return ""
	}

	contact := domain.ContactInfo{
		Person:  pick("contactPerson", "person", "联系人"),
		Phone:   pick("phone", "tel", "电话", "联系电话"),
		Email:   pick("email", "邮箱"),
		Wechat:  pick("wechat", "微信"),
		Address: pick("address", "地址"),
	}
	if contact.Empty() {
		return nil
	}
	return &contact
}
