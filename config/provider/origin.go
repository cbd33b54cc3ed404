package provider

import "strconv"

// Origin describes where an input came from. It is carried into errors
// unchanged and never modified by the registry or the dispatcher.
type Origin struct {
	// Description is a human readable name, e.g. "env var APP_CONFIG".
	Description string
	// Filename is set for inputs read from the filesystem.
	Filename string
	// Line is the 1-based line the origin points at, 0 when unknown.
	Line int
}

// String returns the description, falling back to the filename.
func (o Origin) String() string {
	name := o.Description
	if name == "" {
		name = o.Filename
	}

	if name == "" {
		name = "<unknown origin>"
	}

	if o.Line > 0 {
		name += ":" + strconv.Itoa(o.Line)
	}

	return name
}

// WithLine returns a copy of o pointing at line.
func (o Origin) WithLine(line int) Origin {
	o.Line = line

	return o
}
