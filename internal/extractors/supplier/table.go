package supplier

import (
	"strings"
	"unicode/utf8"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/extractors/fields"
)

// Ensure Table implements the interface.
var _ driven.SupplierStrategy = (*Table)(nil)

// Column role synonyms, matched as substrings of a lowercased header
// cell.
var (
	nameSynonyms    = []string{"name", "company", "供应商", "公司", "企业"}
	dirSynonyms     = []string{"业务", "主营"}
	contactSynonyms = []string{"联系", "电话", "contact", "phone"}
	siteSynonyms    = []string{"官网", "网站", "website", "url"}
	sourceSynonyms  = []string{"信源", "来源", "source"}
)

// Table parses markdown pipe tables into suppliers. A block of
// consecutive pipe-delimited lines qualifies only with a header, a
// separator and at least one data row; a block with no resolvable name
// column is skipped entirely.
type Table struct{}

// NewTable creates the tabular strategy.
func NewTable() *Table {
	return &Table{}
}

// Name identifies the strategy in logs.
func (t *Table) Name() string {
	return "table"
}

// Extract scans the text line by line for pipe-table blocks and parses
// each qualifying block.
func (t *Table) Extract(text string) []domain.ExtractedSupplier {
	var out []domain.ExtractedSupplier
	for _, block := range pipeBlocks(text) {
		out = append(out, parseBlock(block)...)
	}
	return out
}

// pipeBlocks groups consecutive lines that both start and end with a
// pipe character, keeping only blocks of at least three lines
// (header + separator + data).
func pipeBlocks(text string) [][]string {
	var blocks [][]string
	var current []string

	flush := func() {
		if len(current) >= 3 {
			blocks = append(blocks, current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") {
			current = append(current, trimmed)
			continue
		}
		flush()
	}
	flush()
	return blocks
}

// splitRow splits one pipe-delimited row into trimmed cells, dropping
// the empty leading and trailing fields produced by the outer pipes.
func splitRow(row string) []string {
	parts := strings.Split(row, "|")
	if len(parts) < 3 {
		return nil
	}
	cells := make([]string, 0, len(parts)-2)
	for _, p := range parts[1 : len(parts)-1] {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

// columnIndex finds the first header cell containing one of the
// synonyms, or -1.
func columnIndex(header []string, synonyms []string) int {
	for i, cell := range header {
		lower := strings.ToLower(cell)
		for _, syn := range synonyms {
			if strings.Contains(lower, syn) {
				return i
			}
		}
	}
	return -1
}

// parseBlock turns one qualifying pipe block into suppliers. Data rows
// start at index 2, skipping the header and the markdown separator row.
// Rows with an empty or too-short name cell are skipped, not fatal.
func parseBlock(block []string) []domain.ExtractedSupplier {
	header := splitRow(block[0])
	if header == nil {
		return nil
	}

	nameCol := columnIndex(header, nameSynonyms)
	if nameCol < 0 {
		return nil
	}
	dirCol := columnIndex(header, dirSynonyms)
	contactCol := columnIndex(header, contactSynonyms)
	siteCol := columnIndex(header, siteSynonyms)
	sourceCol := columnIndex(header, sourceSynonyms)

	cell := func(cells []string, col int) string {
		if col < 0 || col >= len(cells) {
			return ""
		}
		return cells[col]
	}

	var out []domain.ExtractedSupplier
	for _, row := range block[2:] {
		cells := splitRow(row)
		name := cell(cells, nameCol)
		if utf8.RuneCountInString(name) < domain.MinSupplierNameLen {
			continue
		}

		sup := domain.ExtractedSupplier{
			Name:              name,
			BusinessDirection: fields.SplitList(cell(cells, dirCol)),
			Website:           cell(cells, siteCol),
			SourceNote:        cell(cells, sourceCol),
		}
		if contact := contactFromCell(cell(cells, contactCol)); contact != nil {
			sup.ContactInfo = contact
		}
		out = append(out, sup)
	}
	return out
}

// contactFromCell maps a free-form contact cell to contact info: a cell
// that is mostly digits reads as a phone number, anything else as the
// contact person.
func contactFromCell(cell string) *domain.ContactInfo {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "-" {
		return nil
	}
	digits := 0
	for _, r := range cell {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits*2 >= len(cell) {
		return &domain.ContactInfo{Phone: cell}
	}
	return &domain.ContactInfo{Person: cell}
}
