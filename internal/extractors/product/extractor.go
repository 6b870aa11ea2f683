// Package product recovers wishlist products from free-form AI
// conversation text.
//
// Products share the supplier cascade architecture but carry a smaller
// strategy set: structured JSON first, then a per-line free-text pattern.
// The first strategy yielding at least one product wins. Unparseable
// text yields an empty result, never an error.
package product

import (
	"strings"

	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/ports/driven"
	"github.com/erozihovefi85-debug/procureai-agent-sub001/internal/logger"
)

// Engine runs the product strategy cascade.
type Engine struct {
	strategies []driven.ProductStrategy
}

// NewEngine creates an engine with the default strategy order:
// structured, then free text.
func NewEngine() *Engine {
	return &Engine{
		strategies: []driven.ProductStrategy{
			NewStructured(),
			NewFreeText(),
		},
	}
}

// NewEngineWith creates an engine with an explicit strategy order,
// used in tests.
func NewEngineWith(strategies ...driven.ProductStrategy) *Engine {
	return &Engine{strategies: strategies}
}

// Extract recovers products from one AI message, stamped with the owner
// and session identifiers. Text no strategy can parse yields nil.
func (e *Engine) Extract(text, ownerID, sessionID string) []domain.ExtractedProduct {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	for _, strategy := range e.strategies {
		results := strategy.Extract(text)
		if len(results) == 0 {
			continue
		}
		logger.Debug("product extraction: strategy %q matched %d entities", strategy.Name(), len(results))

		for i := range results {
			results[i].OwnerID = ownerID
			results[i].SessionID = sessionID
		}
		return results
	}

	logger.Debug("product extraction: no strategy matched")
	return nil
}
