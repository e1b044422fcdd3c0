// Package analysis models the structured output of the backend's AI
// analysis passes. Payload shapes are decided by the backend per video, so
// values are decoded into a small closed set of variants rather than a
// fixed schema, and field order is preserved exactly as the backend
// produced it.
package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind discriminates the closed set of value shapes an analysis field can
// take.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindSequence
	KindMapping
)

// Value is one analysis field value: a scalar, a sequence of values, or an
// ordered nested mapping.
type Value struct {
	Kind    Kind
	Str     string
	Num     json.Number
	Bool    bool
	Seq     []Value
	Entries []Entry
}

// Entry is one named field of a mapping, in document order.
type Entry struct {
	Name  string
	Value Value
}

// Payload is one analysis result: an insertion-ordered mapping from field
// name to Value. A nil *Payload means the analysis is absent.
type Payload struct {
	entries []Entry
}

// Fields returns the payload's fields in document order.
func (p *Payload) Fields() []Entry {
	if p == nil {
		return nil
	}
	return p.entries
}

// Len returns the number of fields.
func (p *Payload) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Get returns the value of the named field.
func (p *Payload) Get(name string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	for _, e := range p.entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Summary returns the summary field when present as a non-empty string.
func (p *Payload) Summary() (string, bool) {
	v, ok := p.Get("summary")
	if !ok || v.Kind != KindString || v.Str == "" {
		return "", false
	}
	return v.Str, true
}

// HasError reports whether the payload carries an error marker, meaning
// the analysis pass failed and produced no usable fields.
func (p *Payload) HasError() bool {
	_, ok := p.Get("error")
	return ok
}

// UnmarshalJSON decodes a JSON object preserving field order.
func (p *Payload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("analysis payload: %w", err)
	}
	if tok == nil {
		p.entries = nil
		return nil
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("analysis payload: expected object, got %v", tok)
	}

	entries, err := parseEntries(dec)
	if err != nil {
		return fmt.Errorf("analysis payload: %w", err)
	}
	p.entries = entries
	return nil
}

// MarshalJSON re-encodes the payload compactly in its original field order.
func (p *Payload) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	var b bytes.Buffer
	writeMapping(&b, p.entries, "", 0)
	return b.Bytes(), nil
}

// MarshalIndent renders the payload as pretty-printed JSON with two-space
// indentation, preserving field order. The output is deterministic for a
// given payload.
func (p *Payload) MarshalIndent() string {
	var b bytes.Buffer
	if p == nil {
		b.WriteString("null")
	} else {
		writeMapping(&b, p.entries, "  ", 0)
	}
	return b.String()
}

func parseEntries(dec *json.Decoder) ([]Entry, error) {
	entries := []Entry{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		value, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: key, Value: value})
	}
	// consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			entries, err := parseEntries(dec)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindMapping, Entries: entries}, nil
		case '[':
			seq := []Value{}
			for dec.More() {
				elem, err := parseValue(dec)
				if err != nil {
					return Value{}, err
				}
				seq = append(seq, elem)
			}
			// consume the closing ']'
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{Kind: KindSequence, Seq: seq}, nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case json.Number:
		return Value{Kind: KindNumber, Num: t}, nil
	case bool:
		return Value{Kind: KindBool, Bool: t}, nil
	case nil:
		return Value{Kind: KindNull}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// Text renders a value as display text: scalars as their literal form,
// sequences and mappings as compact JSON.
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num.String()
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	}
	var b bytes.Buffer
	writeValue(&b, v, "", 0)
	return b.String()
}

// JSON renders a value as compact JSON preserving field order.
func (v Value) JSON() string {
	var b bytes.Buffer
	writeValue(&b, v, "", 0)
	return b.String()
}

// Indent renders a value as pretty-printed JSON with two-space indentation.
func (v Value) Indent() string {
	var b bytes.Buffer
	writeValue(&b, v, "  ", 0)
	return b.String()
}

func writeValue(b *bytes.Buffer, v Value, indent string, depth int) {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindString:
		writeString(b, v.Str)
	case KindNumber:
		b.WriteString(v.Num.String())
	case KindBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindSequence:
		writeSequence(b, v.Seq, indent, depth)
	case KindMapping:
		writeMapping(b, v.Entries, indent, depth)
	}
}

func writeSequence(b *bytes.Buffer, seq []Value, indent string, depth int) {
	if len(seq) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteByte('[')
	for i, elem := range seq {
		if i > 0 {
			b.WriteByte(',')
		}
		writeNewline(b, indent, depth+1)
		writeValue(b, elem, indent, depth+1)
	}
	writeNewline(b, indent, depth)
	b.WriteByte(']')
}

func writeMapping(b *bytes.Buffer, entries []Entry, indent string, depth int) {
	if len(entries) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(',')
		}
		writeNewline(b, indent, depth+1)
		writeString(b, e.Name)
		b.WriteByte(':')
		if indent != "" {
			b.WriteByte(' ')
		}
		writeValue(b, e.Value, indent, depth+1)
	}
	writeNewline(b, indent, depth)
	b.WriteByte('}')
}

func writeNewline(b *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
}

func writeString(b *bytes.Buffer, s string) {
	encoded, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail; keep the compiler honest
		b.WriteString(`""`)
		return
	}
	b.Write(encoded)
}
