// Package domain defines the core business entities for the procurement
// assistant.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ExtractedSupplier: A supplier recovered from AI conversation text
//   - ExtractedProduct: A wishlist product recovered from AI conversation text
//   - WorkflowState: The persisted state of the procurement workflow
//   - Stage: One step in the workflow's fixed total order
//   - StageConfig: Display metadata and trigger phrases per stage
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
