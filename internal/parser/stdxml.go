package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

// StdParser walks the token stream with encoding/xml. Token enforces
// well-formedness (tag nesting, namespace syntax), so malformed input
// surfaces as the backend's diagnostic.
type StdParser struct{}

func (p *StdParser) Name() string { return "stdxml" }

func (p *StdParser) Parse(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
