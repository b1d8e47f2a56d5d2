/*
Package ports defines the driven ports (interfaces) for the sift registry
and tooling.

These interfaces decouple schema loading and presentation from external
implementations, allowing the registry to work with various document
sources and frontends.

# Key Interfaces

  - SchemaLoader: Responsible for loading schema documents (e.g., from Loam or Memory).
  - Watchable: Lets a loader signal that its backing source changed.
  - Renderer: Styles presentation text (markdown, report lines) for display.
*/
package ports
