package parser

import (
	"fmt"
	"sort"
	"strings"
)

// Parser is a single XML parsing backend under measurement. Parse consumes
// the whole buffer in one call; the returned error is the backend's
// diagnostic for malformed input.
type Parser interface {
	Name() string
	Parse(data []byte) error
}

// DefaultName is the backend used when none is configured. The DOM backend
// is the reference measurement because it does the most work per call.
const DefaultName = "dom"

var registry = map[string]Parser{}

func register(p Parser) {
	registry[p.Name()] = p
}

func init() {
	register(&DOMParser{})
	register(&StdParser{})
	register(&SAXParser{})
	register(&U8Parser{})
	register(&HTMLParser{})
}

// Get returns the backend registered under name.
func Get(name string) (Parser, error) {
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown parser %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// All returns every registered backend in name order.
func All() []Parser {
	parsers := make([]Parser, 0, len(registry))
	for _, name := range Names() {
		parsers = append(parsers, registry[name])
	}
	return parsers
}

// Names returns the sorted registered backend names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
