package folio

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
)

// This file persists a whole hierarchy as a single human-readable JSON
// document, in a way that is still git-friendly (sorted keys, stable
// indentation).
//
// The document holds three sections: the bucket registry, the envelope
// registry, and the portfolio tree itself. Nodes inside the tree are plain
// nested maps with a "type" discriminator ("line", "folder",
// "shared_folder"); the root's type is implicit. Shared folders reference
// buckets by name, lines reference envelopes by name: decoding resolves
// both against the registries, and an unresolved name is fatal.

// Document is a portfolio hierarchy together with the shared objects it
// references.
type Document struct {
	Buckets   []*Bucket
	Envelopes []*Envelope
	Portfolio *Portfolio
}

// EncodeDocument persists the document as indented JSON with sorted keys.
func EncodeDocument(w io.Writer, doc *Document) error {
	jbuckets := make([]any, 0, len(doc.Buckets))
	for _, b := range doc.Buckets {
		jlines := make([]any, 0, len(b.Lines()))
		for _, l := range b.Lines() {
			jlines = append(jlines, l.ToDict())
		}
		jbuckets = append(jbuckets, map[string]any{"name": b.Name(), "lines": jlines})
	}
	jenvelopes := make([]any, 0, len(doc.Envelopes))
	for _, e := range doc.Envelopes {
		jenvelopes = append(jenvelopes, map[string]any{"name": e.Name(), "key": e.Key()})
	}

	jdoc := map[string]any{
		"buckets":   jbuckets,
		"envelopes": jenvelopes,
		"portfolio": doc.Portfolio.ToDict(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jdoc); err != nil {
		return fmt.Errorf("persist error: cannot write document: %w", err)
	}
	return nil
}

// DecodeDocument reads a document, building the bucket and envelope
// registries first, then resolving the tree against them.
func DecodeDocument(r io.Reader) (*Document, error) {
	jdoc := make(map[string]any)
	if err := json.NewDecoder(r).Decode(&jdoc); err != nil {
		return nil, fmt.Errorf("decode error: not a correct json document: %w", err)
	}

	doc := &Document{}
	envelopes := make(map[string]*Envelope)
	for i, jenvelope := range joptlist(jdoc, "envelopes") {
		m, ok := jenvelope.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("decode error: envelope %d is not an object", i)
		}
		name, err := jstring(m, "name")
		if err != nil {
			return nil, fmt.Errorf("decode error: envelope %d: %w", i, err)
		}
		e := NewEnvelope(name, joptstring(m, "key"))
		doc.Envelopes = append(doc.Envelopes, e)
		envelopes[name] = e
	}

	buckets := make(map[string]*Bucket)
	for i, jbucket := range joptlist(jdoc, "buckets") {
		m, ok := jbucket.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("decode error: bucket %d is not an object", i)
		}
		name, err := jstring(m, "name")
		if err != nil {
			return nil, fmt.Errorf("decode error: bucket %d: %w", i, err)
		}
		var lines []*Line
		for j, jline := range joptlist(m, "lines") {
			lm, ok := jline.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("decode error: bucket %q line %d is not an object", name, j)
			}
			l, err := LineFromDict(lm, envelopes)
			if err != nil {
				return nil, fmt.Errorf("decode error: bucket %q: %w", name, err)
			}
			lines = append(lines, l)
		}
		b := NewBucket(name, lines...)
		doc.Buckets = append(doc.Buckets, b)
		buckets[name] = b
	}

	jportfolio, err := jmap(jdoc, "portfolio")
	if err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	doc.Portfolio, err = PortfolioFromDict(jportfolio, buckets, envelopes)
	if err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	return doc, nil
}

// PortfolioFromDict rebuilds the root of a hierarchy from its plain map form.
func PortfolioFromDict(m map[string]any, buckets map[string]*Bucket, envelopes map[string]*Envelope) (*Portfolio, error) {
	children, err := childrenFromDict(m, buckets, envelopes)
	if err != nil {
		return nil, err
	}
	target, err := targetFromDict(joptmap(m, "target"))
	if err != nil {
		return nil, err
	}
	name, err := jstring(m, "name")
	if err != nil {
		return nil, err
	}
	return NewPortfolioWith(name, PortfolioOpts{Target: target, Currency: joptstring(m, "currency")}, children...), nil
}

// FolderFromDict rebuilds a folder (and recursively its children) from its
// plain map form.
func FolderFromDict(m map[string]any, buckets map[string]*Bucket, envelopes map[string]*Envelope) (*Folder, error) {
	children, err := childrenFromDict(m, buckets, envelopes)
	if err != nil {
		return nil, err
	}
	target, err := targetFromDict(joptmap(m, "target"))
	if err != nil {
		return nil, err
	}
	name, err := jstring(m, "name")
	if err != nil {
		return nil, err
	}
	return NewFolderWith(name, FolderOpts{
		Target:  target,
		Newline: joptbool(m, "newline"),
		Display: Display(joptint(m, "display")),
	}, children...), nil
}

// SharedFolderFromDict rebuilds a shared folder from its plain map form.
// The bucket is resolved by name; an unknown name is fatal.
func SharedFolderFromDict(m map[string]any, buckets map[string]*Bucket) (*SharedFolder, error) {
	name, err := jstring(m, "name")
	if err != nil {
		return nil, err
	}
	bucketName, err := jstring(m, "bucket_name")
	if err != nil {
		return nil, fmt.Errorf("shared folder %q: %w", name, err)
	}
	bucket, ok := buckets[bucketName]
	if !ok {
		return nil, fmt.Errorf("shared folder %q: unknown bucket %q", name, bucketName)
	}
	target, err := targetFromDict(joptmap(m, "target"))
	if err != nil {
		return nil, err
	}
	return NewSharedFolderWith(name, bucket, SharedFolderOpts{
		Target:       target,
		TargetAmount: joptfloat(m, "target_amount"), // absent means unbounded
		Newline:      joptbool(m, "newline"),
		Display:      Display(joptint(m, "display")),
	}), nil
}

// LineFromDict rebuilds a leaf line from its plain map form. The envelope,
// when referenced, is resolved by name; an unknown name is fatal.
func LineFromDict(m map[string]any, envelopes map[string]*Envelope) (*Line, error) {
	name, err := jstring(m, "name")
	if err != nil {
		return nil, err
	}
	amount, err := jfloat(m, "amount")
	if err != nil {
		return nil, fmt.Errorf("line %q: %w", name, err)
	}
	target, err := targetFromDict(joptmap(m, "target"))
	if err != nil {
		return nil, fmt.Errorf("line %q: %w", name, err)
	}

	opts := LineOpts{
		Key:      joptstring(m, "key"),
		Target:   target,
		Currency: joptstring(m, "currency"),
		Newline:  joptbool(m, "newline"),
	}
	if class := joptstring(m, "asset_class"); class != "" {
		if opts.AssetClass, err = ParseAssetClass(class); err != nil {
			return nil, fmt.Errorf("line %q: %w", name, err)
		}
	}
	if subclass := joptstring(m, "asset_subclass"); subclass != "" {
		if opts.AssetSubclass, err = ParseAssetSubclass(subclass); err != nil {
			return nil, fmt.Errorf("line %q: %w", name, err)
		}
	}
	if jperf := joptmap(m, "perf"); jperf != nil {
		opts.Perf = &Perf{Expected: Percent(joptfloat(jperf, "expected")), Skip: joptbool(jperf, "skip")}
	}
	if envelopeName := joptstring(m, "envelope"); envelopeName != "" {
		e, ok := envelopes[envelopeName]
		if !ok {
			return nil, fmt.Errorf("line %q: unknown envelope %q", name, envelopeName)
		}
		opts.Envelope = e
	}
	return NewLineWith(name, amount, opts), nil
}

// childrenFromDict rebuilds a node's children list. Children with an
// unrecognized type discriminator are skipped with a warning rather than
// failing the whole decode.
func childrenFromDict(m map[string]any, buckets map[string]*Bucket, envelopes map[string]*Envelope) ([]Node, error) {
	var children []Node
	for i, jchild := range joptlist(m, "children") {
		cm, ok := jchild.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("child %d is not an object", i)
		}
		kind, err := jstring(cm, "type")
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		var child Node
		switch kind {
		case "line":
			child, err = LineFromDict(cm, envelopes)
		case "folder":
			child, err = FolderFromDict(cm, buckets, envelopes)
		case "shared_folder":
			child, err = SharedFolderFromDict(cm, buckets)
		default:
			log.Printf("warning: skipping child %d with unknown type %q", i, kind)
			continue
		}
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// json plucking helpers. The required j* variants return an error naming the
// missing or mistyped property; the opt variants return the zero value.

func jstring(m map[string]any, key string) (string, error) {
	jvalue, ok := m[key]
	if !ok {
		return "", fmt.Errorf("missing the property %q", key)
	}
	s, ok := jvalue.(string)
	if !ok {
		return "", fmt.Errorf("property %q must be of type 'string'", key)
	}
	return s, nil
}

func jfloat(m map[string]any, key string) (float64, error) {
	jvalue, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("missing the property %q", key)
	}
	f, ok := jvalue.(float64)
	if !ok {
		return 0, fmt.Errorf("property %q must be of type 'number'", key)
	}
	return f, nil
}

func jmap(m map[string]any, key string) (map[string]any, error) {
	jvalue, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("missing the property %q", key)
	}
	obj, ok := jvalue.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("property %q must be of type 'object'", key)
	}
	return obj, nil
}

func joptstring(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func joptfloat(m map[string]any, key string) float64 {
	f, _ := m[key].(float64)
	return f
}

func joptint(m map[string]any, key string) int {
	f, _ := m[key].(float64) // json numbers decode as float64
	return int(f)
}

func joptbool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func joptmap(m map[string]any, key string) map[string]any {
	obj, _ := m[key].(map[string]any)
	return obj
}

func joptlist(m map[string]any, key string) []any {
	list, _ := m[key].([]any)
	return list
}
