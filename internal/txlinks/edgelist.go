package txlinks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedEdgeList is returned when a payload is neither a structured
// nor a legacy edge list.
var ErrMalformedEdgeList = errors.New("malformed edge list")

// Shape identifies the wire form of an edge list.
type Shape int

const (
	// ShapeStructured is `[{"from":"0xA","to":"0xB","hash":"0x1"}]`.
	ShapeStructured Shape = iota

	// ShapeLegacy is `[{"0xA":"0xB"}]`: one object per transaction whose
	// single key is the sender and value the recipient. Hashes are lost.
	ShapeLegacy
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeLegacy:
		return "legacy"
	default:
		return "structured"
	}
}

// EdgeList is an edge sequence tagged with its wire shape.
//
// Decoding accepts either shape, and either one encoded a second time as a
// JSON string. Encoding writes Edges in Shape.
type EdgeList struct {
	Shape Shape
	Edges []Edge
}

// Encode serialises edges in the given shape. A nil or empty slice encodes
// as `[]`.
func Encode(edges []Edge, shape Shape) ([]byte, error) {
	return EdgeList{Shape: shape, Edges: edges}.MarshalJSON()
}

// Decode parses a payload in any accepted form.
func Decode(data []byte) (EdgeList, error) {
	var list EdgeList
	if err := list.UnmarshalJSON(data); err != nil {
		return EdgeList{}, err
	}

	return list, nil
}

// MarshalJSON implements json.Marshaler.
func (l EdgeList) MarshalJSON() ([]byte, error) {
	if l.Shape != ShapeLegacy {
		if l.Edges == nil {
			return []byte("[]"), nil
		}

		return json.Marshal(l.Edges)
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, edge := range l.Edges {
		if i > 0 {
			buf.WriteByte(',')
		}

		from, err := json.Marshal(string(edge.From))
		if err != nil {
			return nil, err
		}

		to, err := json.Marshal(string(edge.To))
		if err != nil {
			return nil, err
		}

		buf.WriteByte('{')
		buf.Write(from)
		buf.WriteByte(':')
		buf.Write(to)
		buf.WriteByte('}')
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *EdgeList) UnmarshalJSON(data []byte) error {
	return l.decode(data, true)
}

func (l *EdgeList) decode(data []byte, allowString bool) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty payload", ErrMalformedEdgeList)
	}

	switch data[0] {
	case 'n':
		if !bytes.Equal(data, []byte("null")) {
			return fmt.Errorf("%w: unexpected literal", ErrMalformedEdgeList)
		}

		*l = EdgeList{Edges: []Edge{}}
		return nil

	case '"':
		if !allowString {
			return fmt.Errorf("%w: nested string encoding", ErrMalformedEdgeList)
		}

		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedEdgeList, err)
		}

		return l.decode([]byte(inner), false)

	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedEdgeList, err)
		}

		return l.decodeItems(items)

	default:
		return fmt.Errorf("%w: expected an array", ErrMalformedEdgeList)
	}
}

func (l *EdgeList) decodeItems(items []json.RawMessage) error {
	list := EdgeList{Edges: make([]Edge, 0, len(items))}

	for i, item := range items {
		pairs, err := objectPairs(item)
		if err != nil {
			return fmt.Errorf("%w: item %d: %w", ErrMalformedEdgeList, i, err)
		}

		shape := shapeOf(pairs)
		if i == 0 {
			list.Shape = shape
		}

		if shape == ShapeStructured {
			edge, err := structuredEdge(item)
			if err != nil {
				return fmt.Errorf("%w: item %d: %w", ErrMalformedEdgeList, i, err)
			}

			if edge.From != "" && edge.To != "" {
				list.Edges = append(list.Edges, edge)
			}
			continue
		}

		for _, p := range pairs {
			var to string
			if err := json.Unmarshal(p.value, &to); err != nil {
				return fmt.Errorf("%w: item %d: recipient of %q: %w", ErrMalformedEdgeList, i, p.key, err)
			}

			if p.key == "" || to == "" {
				continue
			}

			list.Edges = append(list.Edges, Edge{From: Address(p.key), To: Address(to)})
		}
	}

	*l = list
	return nil
}

// pair is one member of a JSON object, in document order.
type pair struct {
	key   string
	value json.RawMessage
}

// objectPairs returns the members of a JSON object in document order, which
// a map would lose.
func objectPairs(data []byte) ([]pair, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected an object")
	}

	var pairs []pair
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("expected an object key")
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		pairs = append(pairs, pair{key: key, value: value})
	}

	if _, err := dec.Token(); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return pairs, nil
}

// shapeOf reports whether an object uses the structured field names.
func shapeOf(pairs []pair) Shape {
	for _, p := range pairs {
		if p.key == "from" || p.key == "to" {
			return ShapeStructured
		}
	}

	return ShapeLegacy
}

func structuredEdge(data []byte) (Edge, error) {
	var raw struct {
		From *string `json:"from"`
		To   *string `json:"to"`
		Hash *string `json:"hash"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Edge{}, err
	}

	var edge Edge
	if raw.From != nil {
		edge.From = Address(*raw.From)
	}
	if raw.To != nil {
		edge.To = Address(*raw.To)
	}
	if raw.Hash != nil {
		edge.Hash = TxHash(*raw.Hash)
	}

	return edge, nil
}
