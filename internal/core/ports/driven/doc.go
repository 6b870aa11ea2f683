// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - StateStore: Workflow snapshot persistence (memory, SQLite, redis)
//   - SettingsStore: Application configuration (TOML file)
//   - SupplierStrategy / ProductStrategy: One parsing technique in an
//     extraction cascade
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
