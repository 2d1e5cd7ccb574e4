package parser

import (
	"bytes"
	"errors"
	"io"

	"github.com/vinser/u8xml"
)

// U8Parser walks the token stream with u8xml, which sniffs the document
// encoding and transcodes to UTF-8 while decoding.
type U8Parser struct{}

func (p *U8Parser) Name() string { return "u8xml" }

func (p *U8Parser) Parse(data []byte) error {
	dec := u8xml.NewDecoder(bytes.NewReader(data))
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
