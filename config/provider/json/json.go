package json

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/0xalexb/hjarta-formats/config/format"
	"github.com/0xalexb/hjarta-formats/config/provider"

	"github.com/valyala/fastjson"
)

// ErrNotObject is returned when the document root is not a JSON object.
var ErrNotObject = errors.New("root must be a JSON object")

//nolint:gochecknoglobals // parsers are reused across calls
var parserPool fastjson.ParserPool

// Provider parses JSON documents.
type Provider struct{}

// New creates a JSON provider.
func New() *Provider {
	return &Provider{}
}

// Format returns format.JSON.
//
//nolint:ireturn // format.Format is the contract type
func (p *Provider) Format() format.Format {
	return format.JSON
}

// RawParseValue reads the whole of r and converts it into plain Go values.
func (p *Provider) RawParseValue(r io.Reader, origin provider.Origin, _ provider.Options, _ provider.IncludeContext) (provider.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, provider.IOFailure(origin, err)
	}

	parser := parserPool.Get()
	defer parserPool.Put(parser)

	root, err := parser.ParseBytes(data)
	if err != nil {
		return nil, provider.SyntaxFailure(origin, fmt.Errorf("cannot parse json: %w", err))
	}

	if t := root.Type(); t != fastjson.TypeObject {
		return nil, provider.SyntaxFailure(origin, fmt.Errorf("%w; got %s", ErrNotObject, t))
	}

	// Values returned by the parser are only valid until it goes back to the pool.
	return convert(root), nil
}

func convert(value *fastjson.Value) any {
	switch value.Type() {
	case fastjson.TypeObject:
		object := value.GetObject()
		result := make(map[string]any, object.Len())

		object.Visit(func(key []byte, v *fastjson.Value) {
			result[string(key)] = convert(v)
		})

		return result
	case fastjson.TypeArray:
		items := value.GetArray()
		result := make([]any, 0, len(items))

		for _, item := range items {
			result = append(result, convert(item))
		}

		return result
	case fastjson.TypeString:
		return string(value.GetStringBytes())
	case fastjson.TypeNumber:
		return convertNumber(value)
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeNull:
		return nil
	default:
		return nil
	}
}

func convertNumber(value *fastjson.Value) any {
	raw := string(value.MarshalTo(nil))

	integer, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return integer
	}

	return value.GetFloat64()
}
