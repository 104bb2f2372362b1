// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/creachadair/mtree/ast"
	"github.com/creachadair/mtree/ast/cursor"
	"github.com/creachadair/mtree/compile"
	"github.com/creachadair/mtree/query"
	"github.com/tailscale/hujson"
)

// loadConfig reads compile options from the HuJSON file at path. Comments and
// trailing commas are allowed. If path is empty, default options are
// returned.
//
// Example:
//
//	{
//	  // Reject mismatched closing tags.
//	  "strict": true,
//	  "pretty": true,
//	  "indent": "\t",
//	}
func loadConfig(path string) (*compile.Options, error) {
	opts := new(compile.Options)
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	if err := dec.Decode(opts); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return opts, nil
}

// parsePath parses a slash-separated cursor path. Elements that parse as
// integers are child offsets; all others are tag names.
func parsePath(s string) ([]any, error) {
	if s == "" {
		return nil, nil
	}
	var path []any
	for _, elt := range strings.Split(s, "/") {
		if elt == "" {
			return nil, fmt.Errorf("empty path element in %q", s)
		}
		if v, err := strconv.Atoi(elt); err == nil {
			path = append(path, v)
		} else {
			path = append(path, elt)
		}
	}
	return path, nil
}

// A selector chooses which nodes of a document to output.
type selector struct {
	path []any  // if non-empty, a cursor path to a single node
	find string // if set, the name of tags to find
}

// apply returns the nodes of a document chosen by s. The path is applied
// first, and the search for tags (if any) is made within the node it reaches.
func (s selector) apply(nodes []ast.Node) ([]ast.Node, error) {
	if len(s.path) != 0 {
		var err error
		nodes, err = selectNode(nodes, s.path)
		if err != nil {
			return nil, err
		}
	}
	if s.find == "" {
		return nodes, nil
	}
	found, err := query.EvalAll(nodes, query.Recur(query.Tag(s.find)))
	if errors.Is(err, query.ErrNoMatches) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return found.(*ast.Fragment).Children, nil
}

// selectNode traverses path from the top-level nodes of a document, and
// returns the node it reaches as a single-element sequence.
func selectNode(nodes []ast.Node, path []any) ([]ast.Node, error) {
	c := cursor.New(ast.NewFragment(nodes...)).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return []ast.Node{c.Value()}, nil
}
