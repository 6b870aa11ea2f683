package driven

import "github.com/erozihovefi85-debug/procureai-agent-sub001/internal/core/domain"

// SupplierStrategy is one parsing technique in the supplier extraction
// cascade. Strategies are tried in a fixed order and the first one
// yielding at least one supplier wins.
//
// Extract never fails: text a strategy cannot parse yields nil.
type SupplierStrategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Extract recovers suppliers from AI conversation text, in
	// source-text order.
	Extract(text string) []domain.ExtractedSupplier
}

// ProductStrategy is one parsing technique in the product extraction
// cascade. Same contract as SupplierStrategy.
type ProductStrategy interface {
	Name() string
	Extract(text string) []domain.ExtractedProduct
}
