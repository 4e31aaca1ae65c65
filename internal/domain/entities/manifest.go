package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	manifestIndent = "  "

	// ManifestFileName is the project descriptor handled specially by the template renderer.
	ManifestFileName = "package.json"

	keyDependencies    = "dependencies"
	keyDevDependencies = "devDependencies"
)

// ErrInvalidManifest is returned when a manifest is not a JSON object.
var ErrInvalidManifest = errors.New("invalid manifest")

// NodeKind identifies the JSON type held by a Node.
type NodeKind int

const (
	KindNull NodeKind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Node is one value of an ordered JSON document. Objects remember the order
// in which their keys were first seen, numbers keep their raw text.
type Node struct {
	Kind   NodeKind
	Bool   bool
	Number string
	String string
	Items  []*Node

	keys   []string
	fields map[string]*Node
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{Kind: KindObject, fields: map[string]*Node{}}
}

// NewString returns a string node.
func NewString(value string) *Node {
	return &Node{Kind: KindString, String: value}
}

// Keys returns the object keys in document order.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != KindObject {
		return nil
	}
	return append([]string(nil), n.keys...)
}

// Get returns the field stored under key, or nil.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Kind != KindObject {
		return nil
	}
	return n.fields[key]
}

// Set stores value under key. An existing key keeps its position, a new key
// is appended.
func (n *Node) Set(key string, value *Node) {
	if n.fields == nil {
		n.fields = map[string]*Node{}
	}
	if _, ok := n.fields[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = value
}

// Delete removes key from the object.
func (n *Node) Delete(key string) {
	if _, ok := n.fields[key]; !ok {
		return
	}
	delete(n.fields, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
}

// Equal reports whether two nodes hold the same JSON value.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case KindNull:
		return true
	case KindBool:
		return n.Bool == other.Bool
	case KindString:
		return n.String == other.String
	case KindNumber:
		return numbersEqual(n.Number, other.Number)
	case KindArray:
		if len(n.Items) != len(other.Items) {
			return false
		}
		for i := range n.Items {
			if !n.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(n.keys) != len(other.keys) {
			return false
		}
		for _, key := range n.keys {
			if !n.fields[key].Equal(other.fields[key]) {
				return false
			}
		}
		return true
	}
	return false
}

func numbersEqual(a, b string) bool {
	if a == b {
		return true
	}
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	return errA == nil && errB == nil && fa == fb
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Bool: n.Bool, Number: n.Number, String: n.String}
	for _, item := range n.Items {
		out.Items = append(out.Items, item.Clone())
	}
	if n.Kind == KindObject {
		out.fields = make(map[string]*Node, len(n.keys))
		for _, key := range n.keys {
			out.Set(key, n.fields[key].Clone())
		}
	}
	return out
}

// ParseNode parses any JSON value into an ordered Node tree.
func ParseNode(data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("malformed JSON")
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

func fromResult(result gjson.Result) *Node {
	switch result.Type {
	case gjson.False:
		return &Node{Kind: KindBool}
	case gjson.True:
		return &Node{Kind: KindBool, Bool: true}
	case gjson.Number:
		return &Node{Kind: KindNumber, Number: result.Raw}
	case gjson.String:
		return NewString(result.Str)
	case gjson.JSON:
		if result.IsArray() {
			node := &Node{Kind: KindArray, Items: []*Node{}}
			result.ForEach(func(_, value gjson.Result) bool {
				node.Items = append(node.Items, fromResult(value))
				return true
			})
			return node
		}
		node := NewObject()
		result.ForEach(func(key, value gjson.Result) bool {
			node.Set(key.Str, fromResult(value))
			return true
		})
		return node
	default:
		return &Node{Kind: KindNull}
	}
}

// MarshalIndent renders the node the same way JSON.stringify(value, null, 2)
// does, without a trailing newline.
func (n *Node) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.write(&buf, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) write(buf *bytes.Buffer, depth int) error {
	switch n.Kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(n.Bool))
	case KindNumber:
		buf.WriteString(n.Number)
	case KindString:
		return writeString(buf, n.String)
	case KindArray:
		if len(n.Items) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, item := range n.Items {
			buf.WriteString(strings.Repeat(manifestIndent, depth+1))
			if err := item.write(buf, depth+1); err != nil {
				return err
			}
			if i < len(n.Items)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(manifestIndent, depth))
		buf.WriteByte(']')
	case KindObject:
		if len(n.keys) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i, key := range n.keys {
			buf.WriteString(strings.Repeat(manifestIndent, depth+1))
			if err := writeString(buf, key); err != nil {
				return err
			}
			buf.WriteString(": ")
			if err := n.fields[key].write(buf, depth+1); err != nil {
				return err
			}
			if i < len(n.keys)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(manifestIndent, depth))
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown node kind %d", n.Kind)
	}
	return nil
}

func writeString(buf *bytes.Buffer, value string) error {
	var encoded bytes.Buffer
	encoder := json.NewEncoder(&encoded)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(encoded.Bytes(), []byte("\n")))
	return nil
}

// Manifest is a parsed package.json document.
type Manifest struct {
	Root *Node
}

// NewManifest builds the minimal manifest written before a template is rendered.
func NewManifest(name, version, author string) *Manifest {
	root := NewObject()
	root.Set("name", NewString(name))
	root.Set("version", NewString(version))
	root.Set("author", NewString(author))
	return &Manifest{Root: root}
}

// ParseManifest parses a package.json document. The top-level value must be an object.
func ParseManifest(data []byte) (*Manifest, error) {
	root, err := ParseNode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if root.Kind != KindObject {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrInvalidManifest)
	}
	return &Manifest{Root: root}, nil
}

// Marshal renders the manifest with a 2-space indent and a trailing newline.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := m.Root.MarshalIndent()
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// StringField returns the top-level string stored under key.
func (m *Manifest) StringField(key string) string {
	node := m.Root.Get(key)
	if node == nil || node.Kind != KindString {
		return ""
	}
	return node.String
}

// SetStringField stores a top-level string.
func (m *Manifest) SetStringField(key, value string) {
	m.Root.Set(key, NewString(value))
}

// Dependencies returns the "dependencies" mapping, or nil when absent.
func (m *Manifest) Dependencies() *Node {
	return m.section(keyDependencies, false)
}

// DevDependencies returns the "devDependencies" mapping, or nil when absent.
func (m *Manifest) DevDependencies() *Node {
	return m.section(keyDevDependencies, false)
}

// SetDependency writes name@constraint into "dependencies", or
// "devDependencies" when dev is true, creating the section if needed.
func (m *Manifest) SetDependency(name, constraint string, dev bool) {
	key := keyDependencies
	if dev {
		key = keyDevDependencies
	}
	m.section(key, true).Set(name, NewString(constraint))
}

// DependencyNames returns the names of every dependency and dev dependency.
func (m *Manifest) DependencyNames() []string {
	names := m.Dependencies().Keys()
	return append(names, m.DevDependencies().Keys()...)
}

func (m *Manifest) section(key string, create bool) *Node {
	node := m.Root.Get(key)
	if node != nil && node.Kind == KindObject {
		return node
	}
	if !create {
		return nil
	}
	node = NewObject()
	m.Root.Set(key, node)
	return node
}
