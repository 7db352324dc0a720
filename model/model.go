/*
Package model reads metadata out of annotation model blobs.

A model blob carries a small fixed header — magic, format version, model
version, display name, supported locales — followed by an opaque payload
that only an annotation engine interprets. The header exists so that hosts
can inspect a model (which languages does it cover? which version is it?)
without instantiating an engine for it.

Layout, all integers big-endian:

	u32 magic "ANM1"
	u32 header format version
	u32 model version
	u16 name length    + UTF-8 bytes
	u16 locales length + UTF-8 bytes (comma-separated BCP-47 tags)
	u32 payload length + payload bytes
*/
package model

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer returns a trace sink for the model package namespace.
func tracer() tracing.Trace {
	return tracing.Select("annotext.model")
}

// Magic identifies an annotation model blob ("ANM1").
const Magic uint32 = 0x414E4D31

// FormatVersion is the header layout version this package reads and writes.
const FormatVersion = 1

var (
	// ErrNotAModel is returned when data does not start with the model magic.
	ErrNotAModel = errors.New("data does not carry a model header")
	// ErrTruncated is returned when data ends inside the header.
	ErrTruncated = errors.New("model data truncated")
	// ErrFormatVersion is returned for headers in an unknown layout version.
	ErrFormatVersion = errors.New("unsupported model format version")
)

// Info is a read-only view over a model blob. It keeps a reference to the
// underlying bytes; the blob must not change while the view is in use.
type Info struct {
	version uint32
	name    string
	locales string
	payload []byte
}

// View parses the header of data and returns a view over it. The payload
// is not copied.
func View(data []byte) (*Info, error) {
	p := &parser{data: data}

	magic, err := p.u32()
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: magic %#08x", ErrNotAModel, magic)
	}

	format, err := p.u32()
	if err != nil {
		return nil, err
	}
	if format != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrFormatVersion, format)
	}

	info := &Info{}
	if info.version, err = p.u32(); err != nil {
		return nil, err
	}

	name, err := p.lengthPrefixed16()
	if err != nil {
		return nil, err
	}
	info.name = string(name)

	locales, err := p.lengthPrefixed16()
	if err != nil {
		return nil, err
	}
	info.locales = string(locales)

	if info.payload, err = p.lengthPrefixed32(); err != nil {
		return nil, err
	}

	tracer().Debugf("model %q version %d, locales %q, %d payload bytes",
		info.name, info.version, info.locales, len(info.payload))
	return info, nil
}

// FromFile reads and parses a model blob from path.
func FromFile(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	return View(data)
}

// Version returns the model version.
func (m *Info) Version() uint32 {
	return m.version
}

// Name returns the model's display name; may be empty.
func (m *Info) Name() string {
	return m.name
}

// Locales returns the raw comma-separated locale list; may be empty.
func (m *Info) Locales() string {
	return m.locales
}

// LocaleTags parses the locale list. Malformed entries are skipped.
func (m *Info) LocaleTags() []language.Tag {
	var tags []language.Tag
	for _, entry := range strings.Split(m.locales, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		tag, err := language.Parse(entry)
		if err != nil {
			tracer().Infof("model declares malformed locale %q", entry)
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// Payload returns the opaque engine payload, without copying.
func (m *Info) Payload() []byte {
	return m.payload
}

// Build assembles a model blob from its parts. The inverse of [View];
// used by tooling and tests.
func Build(version uint32, name, locales string, payload []byte) ([]byte, error) {
	if len(name) > 0xFFFF {
		return nil, fmt.Errorf("model name too long: %d bytes", len(name))
	}
	if len(locales) > 0xFFFF {
		return nil, fmt.Errorf("locale list too long: %d bytes", len(locales))
	}

	buf := make([]byte, 0, 18+len(name)+len(locales)+len(payload))
	buf = appendU32(buf, Magic)
	buf = appendU32(buf, FormatVersion)
	buf = appendU32(buf, version)
	buf = appendU16(buf, uint16(len(name)))
	buf = append(buf, name...)
	buf = appendU16(buf, uint16(len(locales)))
	buf = append(buf, locales...)
	buf = appendU32(buf, uint32(len(payload)))
	buf = append(buf, payload...)
	return buf, nil
}

// --- Header parsing --------------------------------------------------------

// parser walks the header with explicit bounds checks; every read past the
// end fails with ErrTruncated and the offending offset.
type parser struct {
	data []byte
	pos  int
}

func (p *parser) take(n int) ([]byte, error) {
	if n < 0 || p.pos+n > len(p.data) {
		return nil, fmt.Errorf("%w at offset %d", ErrTruncated, p.pos)
	}
	b := p.data[p.pos : p.pos+n]
	p.pos += n
	return b, nil
}

func (p *parser) u16() (uint16, error) {
	b, err := p.take(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (p *parser) u32() (uint32, error) {
	b, err := p.take(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func (p *parser) lengthPrefixed16() ([]byte, error) {
	n, err := p.u16()
	if err != nil {
		return nil, err
	}
	return p.take(int(n))
}

func (p *parser) lengthPrefixed32() ([]byte, error) {
	n, err := p.u32()
	if err != nil {
		return nil, err
	}
	return p.take(int(n))
}

func appendU16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

func appendU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
