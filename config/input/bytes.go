package input

import (
	"bytes"
	"io"
	"slices"

	"github.com/0xalexb/hjarta-formats/config/format"
	"github.com/0xalexb/hjarta-formats/config/provider"
)

// Bytes is an in-memory input. It keeps its own copy of the data.
type Bytes struct {
	description string
	data        []byte
	extension   string
	mimeType    string
}

// NewBytes creates an in-memory input described by description.
func NewBytes(description string, data []byte) *Bytes {
	return &Bytes{
		description: description,
		data:        slices.Clone(data),
		extension:   "",
		mimeType:    "",
	}
}

// NewString is NewBytes for string data.
func NewString(description, data string) *Bytes {
	return NewBytes(description, []byte(data))
}

// WithExtension returns a copy of b that declares ext.
func (b *Bytes) WithExtension(ext string) *Bytes {
	clone := *b
	clone.extension = format.NormalizeExtension(ext)

	return &clone
}

// WithMimeType returns a copy of b that declares mime.
func (b *Bytes) WithMimeType(mime string) *Bytes {
	clone := *b
	clone.mimeType = format.NormalizeMimeType(mime)

	return &clone
}

// Open returns a reader over the data.
func (b *Bytes) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.data)), nil
}

// Origin returns the description as origin.
func (b *Bytes) Origin() provider.Origin {
	return provider.Origin{Description: b.description, Filename: "", Line: 0}
}

// Extension returns the declared extension, or "".
func (b *Bytes) Extension() string {
	return b.extension
}

// MimeType returns the declared mime type, or "".
func (b *Bytes) MimeType() string {
	return b.mimeType
}
