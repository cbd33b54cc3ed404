// Package dispatch parses inputs with the providers of a registry.
//
// Dispatch picks its candidates in this order:
//
//	explicit syntax (Hint.Syntax, then Options.Syntax) -> the single preferred provider of that format
//	extension (Hint.Extension, then Input.Extension)   -> every provider of that extension
//	mime type (Hint.MimeType, then Input.MimeType)     -> every provider of that mime type
//	nothing known                                      -> every registered provider
//
// Candidates are tried one at a time, in priority order, each on a freshly
// opened reader. The first success wins. A syntax failure makes the dispatcher
// move on to the next candidate, unless the failing provider was the only
// candidate, in which case its failure is returned as is. An I/O failure ends
// the dispatch immediately. When every candidate declined, the error matches
// provider.ErrAllProvidersFailed and reports the number of attempts.
//
// The dispatcher imposes no timeout; wrap the input to bound a slow source.
// It keeps no per-call state and is safe for concurrent use once the registry
// is sealed.
package dispatch
