package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// decodeJSON reads a JSON document into the same node tree yaml.v3 builds,
// so one validator serves both formats. Key order, duplicate keys and line
// numbers are kept. On failure the returned line points at the error.
func decodeJSON(data []byte) (*yaml.Node, int, error) {
	d := &jsonDecoder{dec: json.NewDecoder(bytes.NewReader(data)), lines: newlineOffsets(data)}
	d.dec.UseNumber()

	node, err := d.value()
	if err != nil {
		if errors.Is(err, io.EOF) && d.dec.InputOffset() > 0 {
			err = io.ErrUnexpectedEOF
		}
		return nil, d.errorLine(err), err
	}
	if _, err := d.dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, d.errorLine(err), err
	}
	return node, 0, nil
}

type jsonDecoder struct {
	dec   *json.Decoder
	lines []int
}

func newlineOffsets(data []byte) []int {
	var offsets []int
	for i, b := range data {
		if b == '\n' {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

// lineAt returns the 1-based line of a byte offset.
func (d *jsonDecoder) lineAt(offset int64) int {
	return sort.SearchInts(d.lines, int(offset)) + 1
}

func (d *jsonDecoder) errorLine(err error) int {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return d.lineAt(syntaxErr.Offset)
	}
	return d.lineAt(d.dec.InputOffset())
}

func (d *jsonDecoder) value() (*yaml.Node, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, err
	}
	line := d.lineAt(d.dec.InputOffset())

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return d.object(line)
		case '[':
			return d.array(line)
		}
		return nil, fmt.Errorf("unexpected %q", rune(v))
	case string:
		return scalar("!!str", v, line), nil
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return scalar("!!int", v.String(), line), nil
		}
		return scalar("!!float", v.String(), line), nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(v), line), nil
	case nil:
		return scalar("!!null", "null", line), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func (d *jsonDecoder) object(line int) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Line: line}
	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}
		keyNode := scalar("!!str", key, d.lineAt(d.dec.InputOffset()))

		value, err := d.value()
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, keyNode, value)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	return n, nil
}

func (d *jsonDecoder) array(line int) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Line: line}
	for d.dec.More() {
		item, err := d.value()
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, item)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	return n, nil
}

func scalar(tag, value string, line int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value, Line: line}
}
