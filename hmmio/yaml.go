// SPDX-License-Identifier: MIT

package hmmio

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hmmeval/probtable"
)

// Section names of the YAML bundle.
const (
	sectionEmission     = "emission"
	sectionTransition   = "transition"
	sectionInitial      = "initial"
	sectionObservations = "observations"
)

// bundle mirrors the YAML layout. Tables stay as nodes so key order survives.
type bundle struct {
	Emission     yaml.Node `yaml:"emission"`
	Transition   yaml.Node `yaml:"transition"`
	Initial      yaml.Node `yaml:"initial"`
	Observations []string  `yaml:"observations"`
}

// ReadModel decodes a YAML bundle:
//
//	emission:            # state -> {symbol: p}
//	  rain:   {happy: 0.6, grumpy: 0.4}
//	  cloudy: {happy: 0.9, grumpy: 0.1}
//	transition:          # from -> {to: p}
//	  rain:   {rain: 0.7, cloudy: 0.3}
//	  cloudy: {rain: 0.4, cloudy: 0.6}
//	initial: {rain: 0.5, cloudy: 0.5}
//	observations: [happy, grumpy]
//
// Row order becomes the state order; the first row's key order becomes the
// column order. Errors wrap hmm.ErrConfig.
func ReadModel(r io.Reader) (*Document, error) {
	var b bundle
	if err := yaml.NewDecoder(r).Decode(&b); err != nil {
		return nil, configError("yaml", fmt.Errorf("%w: %v", ErrMalformed, err))
	}

	var (
		doc  Document
		errs = make([]error, 3)
	)
	doc.Emission, errs[0] = tableFromNode(sectionEmission, &b.Emission)
	doc.Transition, errs[1] = tableFromNode(sectionTransition, &b.Transition)
	doc.Initial, errs[2] = distributionFromNode(sectionInitial, &b.Initial)
	if err := combineErrors(errs...); err != nil {
		return nil, configError("yaml", err)
	}
	for _, o := range b.Observations {
		doc.Observations = append(doc.Observations, probtable.Canonical(o))
	}

	return &doc, nil
}

// ReadModelFile is ReadModel on a file.
func ReadModelFile(path string) (doc *Document, err error) {
	err = withFile(path, func(r io.Reader) (rerr error) {
		doc, rerr = ReadModel(r)
		return rerr
	})
	if err != nil {
		return nil, configError(path, err)
	}

	return doc, nil
}

// WriteModel encodes d in the layout ReadModel accepts.
func WriteModel(w io.Writer, d *Document) (err error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	addPair(root, sectionEmission, tableNode(d.Emission))
	addPair(root, sectionTransition, tableNode(d.Transition))
	addPair(root, sectionInitial, distributionNode(d.Initial))
	if len(d.Observations) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, o := range d.Observations {
			seq.Content = append(seq.Content, labelNode(o))
		}
		addPair(root, sectionObservations, seq)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() {
		err = combineErrors(err, enc.Close())
	}()

	return enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}})
}

// ---------- decoding helpers ----------

// tableFromNode turns "row: {col: p, ...}" pairs into a Table.
func tableFromNode(section string, n *yaml.Node) (*probtable.Table, error) {
	if n.Kind == 0 {
		return nil, fmt.Errorf("%s: %w", section, ErrMissingSection)
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: want mapping: %w", section, ErrMalformed)
	}

	var (
		header []string
		index  map[string]int
		rows   = make([]probtable.Row, 0, len(n.Content)/2)
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		label, body := n.Content[i].Value, n.Content[i+1]
		entries, err := entriesFromNode(section+"."+label, body)
		if err != nil {
			return nil, err
		}

		if header == nil {
			header = make([]string, len(entries))
			index = make(map[string]int, len(entries))
			for j, e := range entries {
				header[j] = e.Label
				index[probtable.Canonical(e.Label)] = j
			}
		}
		if len(entries) != len(header) {
			return nil, fmt.Errorf("%s.%s: %d keys, first row has %d: %w",
				section, label, len(entries), len(header), ErrRaggedRow)
		}

		values := make([]float64, len(header))
		seen := make([]bool, len(header))
		for _, e := range entries {
			j, ok := index[probtable.Canonical(e.Label)]
			if !ok || seen[j] {
				return nil, fmt.Errorf("%s.%s: key %q: %w", section, label, e.Label, ErrRaggedRow)
			}
			seen[j] = true
			values[j] = e.Value
		}
		rows = append(rows, probtable.Row{Label: label, Values: values})
	}

	t, err := probtable.New(header, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", section, err)
	}

	return t, nil
}

// distributionFromNode turns "label: p" pairs into a Distribution.
func distributionFromNode(section string, n *yaml.Node) (*probtable.Distribution, error) {
	if n.Kind == 0 {
		return nil, fmt.Errorf("%s: %w", section, ErrMissingSection)
	}
	entries, err := entriesFromNode(section, n)
	if err != nil {
		return nil, err
	}
	d, err := probtable.NewDistribution(entries)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", section, err)
	}

	return d, nil
}

// entriesFromNode decodes a flat "label: number" mapping in document order.
func entriesFromNode(where string, n *yaml.Node) ([]probtable.Entry, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: want mapping: %w", where, ErrMalformed)
	}
	entries := make([]probtable.Entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var v float64
		if err := n.Content[i+1].Decode(&v); err != nil {
			return nil, fmt.Errorf("%s.%s: %w: %v", where, n.Content[i].Value, ErrMalformed, err)
		}
		entries = append(entries, probtable.Entry{Label: n.Content[i].Value, Value: v})
	}

	return entries, nil
}

// ---------- encoding helpers ----------

func addPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, labelNode(key), value)
}

func labelNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func numberNode(v float64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

// tableNode writes one flow-style mapping per row.
func tableNode(t *probtable.Table) *yaml.Node {
	out := &yaml.Node{Kind: yaml.MappingNode}
	cols := t.Columns()
	for _, r := range t.Rows() {
		row := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		for _, c := range cols {
			v, _ := t.Lookup(c, r)
			addPair(row, c, numberNode(v))
		}
		addPair(out, r, row)
	}

	return out
}

func distributionNode(d *probtable.Distribution) *yaml.Node {
	out := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	for _, l := range d.Labels() {
		v, _ := d.Lookup(l)
		addPair(out, l, numberNode(v))
	}

	return out
}
