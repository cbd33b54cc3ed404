// Package provider defines the plug-in contract for config format parsers.
//
// A Provider names the format it implements and parses a whole input into a
// Value, usually a map[string]any at the root. Everything else a provider
// exposes has a default derived from its format:
//
//   - PriorityOf: Conf, JSON and Properties occupy three reserved tiers, every
//     other format gets PriorityCustom. Implement Prioritizer to slot in
//     elsewhere, including ahead of the built-ins.
//   - ExtensionsOf / MimeTypesOf: delegate to Format(), unless the provider is
//     its own format, in which case both are empty. Implement Declarer to
//     narrow them down.
//   - Compare: ascending priority; a provider equals itself and sorts before
//     an absent (nil) provider.
//
// Parse failures are reported as *Error values tagged with ErrIO or ErrSyntax
// and carrying the Origin of the input, so callers can tell an unreadable file
// from a malformed one:
//
//	value, err := p.RawParseValue(r, origin, provider.Options{}, nil)
//	if errors.Is(err, provider.ErrSyntax) {
//	    // try another provider
//	}
package provider
