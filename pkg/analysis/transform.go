package analysis

import (
	"strings"
)

// NodeKind identifies what a rendered node represents.
type NodeKind int

const (
	// NodeUnavailable is the single placeholder emitted when an analysis
	// is absent or error-marked.
	NodeUnavailable NodeKind = iota
	// NodeSummary carries the summary field, rendered as prose before all
	// other fields.
	NodeSummary
	// NodeField carries one labeled analysis field.
	NodeField
)

// BodyKind identifies how a field node's body renders.
type BodyKind int

const (
	// BodyText is plain text from a scalar value.
	BodyText BodyKind = iota
	// BodyList is a bulleted list from a sequence value.
	BodyList
	// BodyBlock is a pretty-printed structured block from a mapping value.
	BodyBlock
)

// Node is one renderable unit of an analysis view. The display layer owns
// icons, colors and layout; nodes carry only labels and content.
type Node struct {
	Kind  NodeKind
	Label string
	Body  BodyKind
	Text  string
	Items []string
}

// Transform converts one analysis payload into an ordered node sequence.
//
// An absent or error-marked payload yields a single unavailable placeholder
// carrying the caller's label. Otherwise the summary field (when present)
// comes first, followed by one node per remaining field in the payload's
// own order; the transform never sorts. The function is pure: identical
// payloads always produce identical sequences.
func Transform(label string, payload *Payload) []Node {
	if payload == nil || payload.HasError() {
		return []Node{{Kind: NodeUnavailable, Label: label}}
	}

	nodes := []Node{}
	if summary, ok := payload.Summary(); ok {
		nodes = append(nodes, Node{Kind: NodeSummary, Label: label, Text: summary})
	}

	for _, field := range payload.Fields() {
		if field.Name == "summary" || field.Name == "error" {
			continue
		}
		nodes = append(nodes, fieldNode(field))
	}

	return nodes
}

func fieldNode(field Entry) Node {
	node := Node{
		Kind:  NodeField,
		Label: humanizeFieldName(field.Name),
	}

	switch field.Value.Kind {
	case KindSequence:
		node.Body = BodyList
		node.Items = make([]string, len(field.Value.Seq))
		for i, elem := range field.Value.Seq {
			node.Items[i] = elem.Text()
		}
	case KindMapping:
		node.Body = BodyBlock
		node.Text = field.Value.Indent()
	default:
		node.Body = BodyText
		node.Text = field.Value.Text()
	}

	return node
}

// humanizeFieldName turns a backend field name like "key_points" or
// "risk-factors" into "key points" / "risk factors".
func humanizeFieldName(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}
