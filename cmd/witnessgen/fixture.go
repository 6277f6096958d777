package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/consensys/witness-air/field"
	"github.com/consensys/witness-air/rawtrace"
)

// columnJSON is one column in the input fixture: a list of hex-encoded
// 32-byte big-endian field elements, one per row.
type columnJSON []string

func (c columnJSON) decode() ([]field.Element, error) {
	out := make([]field.Element, len(c))

	for i, s := range c {
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		out[i] = field.FromBytes(b)
	}

	return out, nil
}

type sideJSON struct {
	Columns []columnJSON `json:"columns"`
	Filter  columnJSON   `json:"filter,omitempty"`
}

func (s sideJSON) decode() (rawtrace.Side, error) {
	var out rawtrace.Side

	for _, c := range s.Columns {
		col, err := c.decode()
		if err != nil {
			return out, err
		}

		out.Columns = append(out.Columns, col)
	}

	if len(s.Filter) > 0 {
		filter, err := s.Filter.decode()
		if err != nil {
			return out, err
		}

		out.Filter = filter
	}

	return out, nil
}

type lookupJSON struct {
	Handle  string       `json:"handle"`
	A       []columnJSON `json:"a"`
	AFilter columnJSON   `json:"a_filter,omitempty"`
	B       []sideJSON   `json:"b"`
}

func (l lookupJSON) decode() (*rawtrace.Lookup, error) {
	out := &rawtrace.Lookup{Handle: l.Handle}

	for _, c := range l.A {
		col, err := c.decode()
		if err != nil {
			return nil, err
		}

		out.A = append(out.A, col)
	}

	if len(l.AFilter) > 0 {
		filter, err := l.AFilter.decode()
		if err != nil {
			return nil, err
		}

		out.AFilter = filter
	}

	for _, s := range l.B {
		side, err := s.decode()
		if err != nil {
			return nil, err
		}

		out.B = append(out.B, side)
	}

	return out, nil
}

type permutationJSON struct {
	Handle string       `json:"handle"`
	A      []columnJSON `json:"a"`
	B      []columnJSON `json:"b"`
}

func (p permutationJSON) decode() (*rawtrace.Permutation, error) {
	out := &rawtrace.Permutation{Handle: p.Handle}

	for _, c := range p.A {
		col, err := c.decode()
		if err != nil {
			return nil, err
		}

		out.A = append(out.A, col)
	}

	for _, c := range p.B {
		col, err := c.decode()
		if err != nil {
			return nil, err
		}

		out.B = append(out.B, col)
	}

	return out, nil
}

// fixtureJSON is the top-level input document: the raw tables for one
// trace, plus the public Fiat–Shamir challenges to fold and bind them with.
type fixtureJSON struct {
	Alpha        string            `json:"alpha"`
	Delta        string            `json:"delta"`
	Lookups      []lookupJSON      `json:"lookups"`
	Permutations []permutationJSON `json:"permutations"`
}

func readFixture(path string) (*fixtureJSON, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fx fixtureJSON
	if err := json.Unmarshal(bytes, &fx); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &fx, nil
}

func decodeChallenge(s string) (field.Element, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return field.Element{}, err
	}

	return field.FromBytes(b), nil
}
