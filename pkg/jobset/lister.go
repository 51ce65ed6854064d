// Copyright 2025 Missingjobs Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package jobset

import (
	"path/filepath"
	"sort"
	"strings"
)

// Lister enumerates the file names that start with a prefix.
type Lister interface {
	List(prefix string) ([]string, error)
}

// GlobLister lists filesystem entries matching "<prefix>*". A directory
// component in the prefix is resolved against the working directory.
// Hidden entries only match when the prefix's last segment starts with a dot.
type GlobLister struct{}

// List implements Lister.
func (GlobLister) List(prefix string) ([]string, error) {
	matches, err := filepath.Glob(prefix + "*")
	if err != nil {
		return nil, &ListingError{Prefix: prefix, Err: err}
	}

	if strings.HasPrefix(lastSegment(prefix), ".") {
		return matches, nil
	}
	visible := matches[:0]
	for _, m := range matches {
		if !strings.HasPrefix(filepath.Base(m), ".") {
			visible = append(visible, m)
		}
	}
	return visible, nil
}

// lastSegment returns the part of prefix after its final separator. It is
// empty for "" and for prefixes ending in a separator.
func lastSegment(prefix string) string {
	_, seg := filepath.Split(prefix)
	return seg
}

// StaticLister serves fixed name lists keyed by prefix. Unknown prefixes
// list nothing.
type StaticLister map[string][]string

// List implements Lister.
func (l StaticLister) List(prefix string) ([]string, error) {
	names := append([]string(nil), l[prefix]...)
	sort.Strings(names)
	return names, nil
}
