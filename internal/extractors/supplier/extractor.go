// Package supplier recovers procurement suppliers from free-form AI
// conversation text.
//
// Extraction runs a fixed cascade of parsing strategies — structured
// JSON, pipe-delimited tables, numbered/bulleted lists, then label-based
// free text. The first strategy yielding at least one supplier wins and
// later strategies are not tried. Unparseable text yields an empty
// result, never an error.
package supplier

import (
	"strings"
	"time"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/logger"
)

// Engine runs the supplier strategy cascade.
type Engine struct {
	strategies []driven.SupplierStrategy
}

// NewEngine creates an engine with the default strategy order:
// structured, table, list, free text.
func NewEngine() *Engine {
	return &Engine{
		strategies: []driven.SupplierStrategy{
			NewStructured(),
			NewTable(),
			NewList(),
			NewFreeText(),
		},
	}
}

// NewEngineWith creates an engine with an explicit strategy order,
// used in tests.
func NewEngineWith(strategies ...driven.SupplierStrategy) *Engine {
	return &Engine{strategies: strategies}
}

// Extract recovers suppliers from one AI message. Entities come back in
// source-text order within the winning strategy, stamped with the owner
// and session identifiers. Text no strategy can parse yields nil.
func (e *Engine) Extract(text, ownerID, sessionID string) []domain.ExtractedSupplier {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	for _, strategy := range e.strategies {
		results := strategy.Extract(text)
		if len(results) == 0 {
			continue
		}
		logger.Debug("supplier extraction: strategy %q matched %d entities", strategy.Name(), len(results))

		now := time.Now()
		for i := range results {
			results[i].OwnerID = ownerID
			results[i].SessionID = sessionID
			results[i].Source = domain.SourceAI
			results[i].CreatedAt = now
		}
		return results
	}

	logger.Debug("supplier extraction: no strategy matched")
	return nil
}
