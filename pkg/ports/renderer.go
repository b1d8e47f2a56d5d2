package ports

// Renderer transforms presentation text before it is displayed.
// This allows frontends to style output (markdown to ANSI, colored
// report lines) without coupling the producing package to a terminal.
type Renderer func(string) (string, error)
