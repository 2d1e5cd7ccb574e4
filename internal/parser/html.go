package parser

import (
	"bytes"

	"golang.org/x/net/html"
)

// HTMLParser parses the buffer as an HTML5 document tree. XHTML input is
// valid HTML5, and this backend shows what error-recovering parsers pay for
// the same corpus. It only fails on I/O errors; malformed markup is
// recovered, never rejected.
type HTMLParser struct{}

func (p *HTMLParser) Name() string { return "html" }

func (p *HTMLParser) Parse(data []byte) error {
	_, err := html.Parse(bytes.NewReader(data))
	return err
}
