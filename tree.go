package geojson

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/juju/errors"
)

// parseTree parses data into a generic tree of maps, slices, strings, bools,
// nils and json.Number values.
//
// Number literals are kept as text without range checks, so integers and
// floats stay distinguishable and an out-of-range literal is reported by the
// schema pass with its path. The tree is built with an explicit stack, so
// nesting is bounded only by Decoder.MaxDepth and the value depth limit.
func parseTree(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	type container struct {
		arr    []interface{}
		obj    map[string]interface{}
		key    string
		hasKey bool
	}

	var (
		stack []*container
		root  interface{}
		done  bool
	)
	add := func(v interface{}) {
		if len(stack) == 0 {
			root, done = v, true
			return
		}
		top := stack[len(stack)-1]
		if top.obj != nil {
			top.obj[top.key] = v
			top.hasKey = false
			return
		}
		top.arr = append(top.arr, v)
	}
	pop := func() *container {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for !done {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, malformed(err, dec.InputOffset())
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				stack = append(stack, &container{obj: map[string]interface{}{}})
			case '[':
				stack = append(stack, &container{arr: []interface{}{}})
			case '}':
				add(pop().obj)
			case ']':
				add(pop().arr)
			}
		case string:
			// inside an object strings alternate between key and value
			if n := len(stack); n > 0 && stack[n-1].obj != nil && !stack[n-1].hasKey {
				stack[n-1].key, stack[n-1].hasKey = t, true
				continue
			}
			add(t)
		default:
			add(t)
		}
	}

	switch _, err := dec.Token(); err {
	case io.EOF:
		return root, nil
	case nil:
		return nil, malformed(errors.New("trailing data after document"), dec.InputOffset())
	default:
		return nil, malformed(err, dec.InputOffset())
	}
}

// malformed wraps a parser error. The parser's own offset wins over the
// given one when it reports a syntax error.
func malformed(err error, offset int64) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		offset = syntaxErr.Offset
	}
	return &DecodeError{Cause: ErrMalformedJSON, Offset: offset, Err: err}
}
