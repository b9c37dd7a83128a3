// Copyright 2024-25 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// The structured output tree. Parameter order inside a page is significant,
// so objects marshal their keys in insertion order; encoding/json is only
// used for scalar escaping.

package logpage

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

type NodeKind int

const (
	KindObject NodeKind = iota
	KindArray
	KindInt
	KindAnnotatedInt // integer plus hex rendering and/or decoded name
	KindBool
	KindString
	KindBytes
)

// hexBlobChunk is the maximum number of raw bytes rendered into a single hex
// string; longer blobs are split into an array of chunks.
const hexBlobChunk = 256

type field struct {
	key  string
	node *Node
}

// Node is one vertex of the structured output tree.
type Node struct {
	Kind NodeKind

	fields []field // object
	items  []*Node // array

	intVal  uint64
	boolVal bool
	strVal  string // KindString text, or decoded name for KindAnnotatedInt
	note    string
	raw     []byte // KindBytes
	hexed   bool   // KindAnnotatedInt: include the hex rendering
}

func newObject() *Node { return &Node{Kind: KindObject} }
func newArray() *Node  { return &Node{Kind: KindArray} }

// put attaches child under key, replacing any previous entry with that key.
func (n *Node) put(key string, child *Node) *Node {
	for i := range n.fields {
		if n.fields[i].key == key {
			n.fields[i].node = child
			return child
		}
	}
	n.fields = append(n.fields, field{key, child})
	return child
}

func (n *Node) append(child *Node) *Node {
	n.items = append(n.items, child)
	return child
}

// Get returns the child stored under key, or nil. Mostly used by tests.
func (n *Node) Get(key string) *Node {
	for _, f := range n.fields {
		if f.key == key {
			return f.node
		}
	}
	return nil
}

// Len returns the number of fields or items, depending on kind.
func (n *Node) Len() int {
	if n.Kind == KindArray {
		return len(n.items)
	}
	return len(n.fields)
}

// Item returns the i-th element of an array node.
func (n *Node) Item(i int) *Node {
	if n.Kind != KindArray || i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i]
}

// Int returns the integer carried by an int-like node.
func (n *Node) Int() uint64 { return n.intVal }

// Str returns the string or decoded name carried by the node.
func (n *Node) Str() string { return n.strVal }

// Note returns the explanatory note, if any.
func (n *Node) Note() string { return n.note }

// stripNotes removes purely cosmetic annotations in place: scalar notes and
// the page-level "notes" arrays. Used when comparing trees for round-trip
// equality, where only the decoded values matter.
func (n *Node) stripNotes() {
	n.note = ""
	kept := n.fields[:0]
	for _, f := range n.fields {
		if f.key == "notes" {
			continue
		}
		f.node.stripNotes()
		kept = append(kept, f)
	}
	n.fields = kept
	for _, it := range n.items {
		it.stripNotes()
	}
}

// MarshalJSON renders the node preserving insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encode(buf *bytes.Buffer) error {
	switch n.Kind {
	case KindObject:
		buf.WriteByte('{')
		for i, f := range n.fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, f.key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := f.node.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')

	case KindArray:
		buf.WriteByte('[')
		for i, it := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := it.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case KindInt:
		// A note on a bare integer promotes it to annotated form so the
		// note is not lost.
		if n.note != "" {
			return n.encodeAnnotated(buf)
		}
		fmt.Fprintf(buf, "%d", n.intVal)

	case KindAnnotatedInt:
		return n.encodeAnnotated(buf)

	case KindBool:
		if n.boolVal {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}

	case KindString:
		return encodeString(buf, n.strVal)

	case KindBytes:
		if len(n.raw) <= hexBlobChunk {
			return encodeString(buf, hex.EncodeToString(n.raw))
		}
		buf.WriteByte('[')
		for i := 0; i < len(n.raw); i += hexBlobChunk {
			if i > 0 {
				buf.WriteByte(',')
			}
			end := i + hexBlobChunk
			if end > len(n.raw) {
				end = len(n.raw)
			}
			if err := encodeString(buf, hex.EncodeToString(n.raw[i:end])); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}

	return nil
}

// encodeAnnotated writes the object form an enum/bitfield scalar must take:
// raw integer plus hex rendering plus decoded string where known.
func (n *Node) encodeAnnotated(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	fmt.Fprintf(buf, `"value":%d`, n.intVal)
	if n.hexed {
		fmt.Fprintf(buf, `,"hex":"%#x"`, n.intVal)
	}
	if n.strVal != "" {
		buf.WriteString(`,"name":`)
		if err := encodeString(buf, n.strVal); err != nil {
			return err
		}
	}
	if n.note != "" {
		buf.WriteString(`,"note":`)
		if err := encodeString(buf, n.note); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
