package boundary

import (
	"errors"
	"fmt"
	"math"

	"github.com/annotext/annotext/engine"
	"github.com/annotext/annotext/span"
)

// Wire layout, all integers big-endian.
//
// classifications block:
//
//	u8  codec version
//	u16 count
//	per entry:
//	  u16 collection length + bytes (UTF-8)
//	  u32 score (float32 bits)
//	  u8  flags (flagDatetime, flagPayload)
//	  i64 datetime ms      -- only with flagDatetime
//	  i32 granularity      -- only with flagDatetime
//	  u32 payload length + bytes -- only with flagPayload
//
// annotations block:
//
//	u8  codec version
//	u16 count
//	per entry:
//	  i32 span start, i32 span end   (UTF-16 code units; -1 = unresolved)
//	  u16 classification count + entries as above (without version byte)

// CodecVersion identifies the wire layout produced by this package.
const CodecVersion = 1

const (
	flagDatetime = 1 << iota
	flagPayload
)

var (
	// ErrTruncated is returned when encoded data ends mid-structure.
	ErrTruncated = errors.New("encoded result truncated")
	// ErrCodecVersion is returned for data from an unknown codec version.
	ErrCodecVersion = errors.New("unsupported codec version")
)

// MarshalClassifications encodes classification results for transport.
func MarshalClassifications(results []engine.Classification) ([]byte, error) {
	if len(results) > math.MaxUint16 {
		return nil, fmt.Errorf("too many classifications: %d", len(results))
	}
	buf := []byte{CodecVersion}
	buf = appendU16(buf, uint16(len(results)))
	var err error
	for _, c := range results {
		if buf, err = appendClassification(buf, c); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// UnmarshalClassifications decodes a classifications block.
func UnmarshalClassifications(data []byte) ([]engine.Classification, error) {
	d := &decoder{data: data}
	if err := d.version(); err != nil {
		return nil, err
	}
	results, err := d.classifications()
	if err != nil {
		return nil, err
	}
	if err := d.done(); err != nil {
		return nil, err
	}
	return results, nil
}

// MarshalAnnotations encodes annotated spans for transport. Span offsets
// are carried verbatim; the caller decides which index space they are in
// (the Service always emits UTF-16 code units).
func MarshalAnnotations(annotations []engine.AnnotatedSpan) ([]byte, error) {
	if len(annotations) > math.MaxUint16 {
		return nil, fmt.Errorf("too many annotations: %d", len(annotations))
	}
	buf := []byte{CodecVersion}
	buf = appendU16(buf, uint16(len(annotations)))
	var err error
	for _, a := range annotations {
		buf = appendU32(buf, uint32(int32(a.Span.Start)))
		buf = appendU32(buf, uint32(int32(a.Span.End)))
		if len(a.Classifications) > math.MaxUint16 {
			return nil, fmt.Errorf("too many classifications: %d", len(a.Classifications))
		}
		buf = appendU16(buf, uint16(len(a.Classifications)))
		for _, c := range a.Classifications {
			if buf, err = appendClassification(buf, c); err != nil {
				return nil, err
			}
		}
	}
	return buf, nil
}

// UnmarshalAnnotations decodes an annotations block.
func UnmarshalAnnotations(data []byte) ([]engine.AnnotatedSpan, error) {
	d := &decoder{data: data}
	if err := d.version(); err != nil {
		return nil, err
	}
	count, err := d.u16()
	if err != nil {
		return nil, err
	}
	annotations := make([]engine.AnnotatedSpan, 0, count)
	for i := 0; i < int(count); i++ {
		start, err := d.u32()
		if err != nil {
			return nil, err
		}
		end, err := d.u32()
		if err != nil {
			return nil, err
		}
		classifications, err := d.classifications()
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, engine.AnnotatedSpan{
			Span:            span.New(int(int32(start)), int(int32(end))),
			Classifications: classifications,
		})
	}
	if err := d.done(); err != nil {
		return nil, err
	}
	return annotations, nil
}

// --- Encoding helpers ------------------------------------------------------

func appendClassification(buf []byte, c engine.Classification) ([]byte, error) {
	if len(c.Collection) > math.MaxUint16 {
		return nil, fmt.Errorf("collection name too long: %d bytes", len(c.Collection))
	}
	if uint64(len(c.KnowledgePayload)) > math.MaxUint32 {
		return nil, fmt.Errorf("knowledge payload too long: %d bytes", len(c.KnowledgePayload))
	}

	buf = appendU16(buf, uint16(len(c.Collection)))
	buf = append(buf, c.Collection...)
	buf = appendU32(buf, math.Float32bits(c.Score))

	var flags byte
	if c.Datetime.IsSet() {
		flags |= flagDatetime
	}
	if len(c.KnowledgePayload) > 0 {
		flags |= flagPayload
	}
	buf = append(buf, flags)

	if c.Datetime.IsSet() {
		buf = appendU64(buf, uint64(c.Datetime.TimeMs))
		buf = appendU32(buf, uint32(int32(c.Datetime.Granularity)))
	}
	if len(c.KnowledgePayload) > 0 {
		buf = appendU32(buf, uint32(len(c.KnowledgePayload)))
		buf = append(buf, c.KnowledgePayload...)
	}
	return buf, nil
}

func appendU16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

func appendU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func appendU64(buf []byte, v uint64) []byte {
	buf = appendU32(buf, uint32(v>>32))
	return appendU32(buf, uint32(v))
}

// --- Decoding --------------------------------------------------------------

// decoder reads the wire layout with explicit bounds checking. Every read
// fails with ErrTruncated instead of panicking on short input.
type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) version() error {
	v, err := d.u8()
	if err != nil {
		return err
	}
	if v != CodecVersion {
		return fmt.Errorf("%w: %d", ErrCodecVersion, v)
	}
	return nil
}

func (d *decoder) classifications() ([]engine.Classification, error) {
	count, err := d.u16()
	if err != nil {
		return nil, err
	}
	results := make([]engine.Classification, 0, count)
	for i := 0; i < int(count); i++ {
		c, err := d.classification()
		if err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, nil
}

func (d *decoder) classification() (engine.Classification, error) {
	var c engine.Classification

	collection, err := d.lengthPrefixed16()
	if err != nil {
		return c, err
	}
	c.Collection = string(collection)

	scoreBits, err := d.u32()
	if err != nil {
		return c, err
	}
	c.Score = math.Float32frombits(scoreBits)

	flags, err := d.u8()
	if err != nil {
		return c, err
	}
	if flags&flagDatetime != 0 {
		ms, err := d.u64()
		if err != nil {
			return c, err
		}
		granularity, err := d.u32()
		if err != nil {
			return c, err
		}
		c.Datetime = engine.DatetimeAt(int64(ms), engine.Granularity(int32(granularity)))
	}
	if flags&flagPayload != 0 {
		payload, err := d.lengthPrefixed32()
		if err != nil {
			return c, err
		}
		c.KnowledgePayload = append([]byte(nil), payload...)
	}
	return c, nil
}

func (d *decoder) lengthPrefixed16() ([]byte, error) {
	n, err := d.u16()
	if err != nil {
		return nil, err
	}
	return d.take(int(n))
}

func (d *decoder) lengthPrefixed32() ([]byte, error) {
	n, err := d.u32()
	if err != nil {
		return nil, err
	}
	return d.take(int(n))
}

func (d *decoder) take(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.data) {
		return nil, fmt.Errorf("%w at offset %d", ErrTruncated, d.pos)
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *decoder) u8() (byte, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *decoder) u16() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (d *decoder) u32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func (d *decoder) u64() (uint64, error) {
	hi, err := d.u32()
	if err != nil {
		return 0, err
	}
	lo, err := d.u32()
	if err != nil {
		return 0, err
	}
	return uint64(hi)<<32 | uint64(lo), nil
}

// done fails when trailing bytes follow a complete block.
func (d *decoder) done() error {
	if d.pos != len(d.data) {
		return fmt.Errorf("%d trailing bytes after encoded block", len(d.data)-d.pos)
	}
	return nil
}
