package parser

import (
	"bytes"

	"github.com/orisano/gosax"
)

// SAXParser drains the gosax event stream without materializing a tree.
type SAXParser struct{}

func (p *SAXParser) Name() string { return "sax" }

func (p *SAXParser) Parse(data []byte) error {
	r := gosax.NewReader(bytes.NewReader(data))
	for {
		e, err := r.Event()
		if err != nil {
			return err
		}
		if e.Type() == gosax.EventEOF {
			return nil
		}
	}
}
