// Package driving defines the interfaces that the outside world calls IN
// through. CLI and watcher adapters depend on these interfaces; core
// services implement them.
package driving
