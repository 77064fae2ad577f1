package rres

import "fmt"

// Resource views: pure functions that interpret an unpacked chunk's
// (propCount, props, raw) triple as a typed, asset-specific descriptor.
// None of these own the chunk's buffers; callers keep the Chunk alive for
// as long as a view's byte slices are in use.

// Raw is the view for a RAWD chunk.
type Raw struct {
	Size uint32
	Data []byte
}

// AsRaw interprets c as a RAWD resource.
func AsRaw(c *Chunk) (Raw, error) {
	if c.Info.Type != TypeRawData {
		return Raw{}, fmt.Errorf("%w: %s", ErrWrongType, c.Info.Type)
	}
	if len(c.Props) < 1 {
		return Raw{}, ErrMalformedChunk
	}
	return Raw{Size: c.Props[0], Data: c.Raw}, nil
}

// Text is the view for a TEXT chunk.
type Text struct {
	Size         uint32
	TextEncoding uint32
	CodeLang     uint32
	CultureCode  uint32
	Data         []byte
}

// AsText interprets c as a TEXT resource.
func AsText(c *Chunk) (Text, error) {
	if c.Info.Type != TypeText {
		return Text{}, fmt.Errorf("%w: %s", ErrWrongType, c.Info.Type)
	}
	if len(c.Props) < 4 {
		return Text{}, ErrMalformedChunk
	}
	return Text{
		Size:         c.Props[0],
		TextEncoding: c.Props[1],
		CodeLang:     c.Props[2],
		CultureCode:  c.Props[3],
		Data:         c.Raw,
	}, nil
}

// Image is the view for an IMGE chunk.
type Image struct {
	Width       uint32
	Height      uint32
	MipmapCount uint32
	PixelFormat uint32
	Pixels      []byte
}

// AsImage interprets c as an IMGE resource.
func AsImage(c *Chunk) (Image, error) {
	if c.Info.Type != TypeImage {
		return Image{}, fmt.Errorf("%w: %s", ErrWrongType, c.Info.Type)
	}
	if len(c.Props) < 4 {
		return Image{}, ErrMalformedChunk
	}
	return Image{
		Width:       c.Props[0],
		Height:      c.Props[1],
		MipmapCount: c.Props[2],
		PixelFormat: c.Props[3],
		Pixels:      c.Raw,
	}, nil
}

// Wave is the view for a WAVE chunk.
type Wave struct {
	FrameCount uint32
	SampleRate uint32
	SampleSize uint32
	Channels   uint32
	PCM        []byte
}

// AsWave interprets c as a WAVE resource.
func AsWave(c *Chunk) (Wave, error) {
	if c.Info.Type != TypeWave {
		return Wave{}, fmt.Errorf("%w: %s", ErrWrongType, c.Info.Type)
	}
	if len(c.Props) < 4 {
		return Wave{}, ErrMalformedChunk
	}
	return Wave{
		FrameCount: c.Props[0],
		SampleRate: c.Props[1],
		SampleSize: c.Props[2],
		Channels:   c.Props[3],
		PCM:        c.Raw,
	}, nil
}

// Vertex is the view for a VRTX chunk. props = {vertexCount,
// vertexAttribute, vertexFormat}.
type Vertex struct {
	VertexCount     uint32
	VertexAttribute uint32
	VertexFormat    uint32
	Attributes      []byte
}

// AsVertex interprets c as a VRTX resource.
func AsVertex(c *Chunk) (Vertex, error) {
	if c.Info.Type != TypeVertex {
		return Vertex{}, fmt.Errorf("%w: %s", ErrWrongType, c.Info.Type)
	}
	if len(c.Props) < 3 {
		return Vertex{}, ErrMalformedChunk
	}
	return Vertex{
		VertexCount:     c.Props[0],
		VertexAttribute: c.Props[1],
		VertexFormat:    c.Props[2],
		Attributes:      c.Raw,
	}, nil
}

// Glyph is one entry of a Font's glyph table: a fixed 6xu32 record
// {codepoint, x, y, width, height, advanceX}.
type Glyph struct {
	Codepoint uint32
	X, Y      uint32
	Width     uint32
	Height    uint32
	AdvanceX  uint32
}

// Font is the view for a FNTG chunk. props = {baseSize, glyphCount,
// glyphPadding, fontType}; raw is glyphCount fixed-size glyph records. A
// font resource is typically chained to a sibling IMGE chunk (the glyph
// atlas) via the chunk's NextOffset.
type Font struct {
	BaseSize     uint32
	GlyphCount   uint32
	GlyphPadding uint32
	FontType     uint32
	Glyphs       []Glyph
}

const glyphRecordWords = 6

// AsFont interprets c as a FNTG resource.
func AsFont(c *Chunk) (Font, error) {
	if c.Info.Type != TypeFont {
		return Font{}, fmt.Errorf("%w: %s", ErrWrongType, c.Info.Type)
	}
	if len(c.Props) < 4 {
		return Font{}, ErrMalformedChunk
	}
	f := Font{
		BaseSize:     c.Props[0],
		GlyphCount:   c.Props[1],
		GlyphPadding: c.Props[2],
		FontType:     c.Props[3],
	}
	need := int(f.GlyphCount) * glyphRecordWords * 4
	if need > len(c.Raw) {
		return Font{}, ErrMalformedChunk
	}
	f.Glyphs = make([]Glyph, f.GlyphCount)
	for i := range f.Glyphs {
		base := i * glyphRecordWords * 4
		f.Glyphs[i] = Glyph{
			Codepoint: leUint32(c.Raw[base:]),
			X:         leUint32(c.Raw[base+4:]),
			Y:         leUint32(c.Raw[base+8:]),
			Width:     leUint32(c.Raw[base+12:]),
			Height:    leUint32(c.Raw[base+16:]),
			AdvanceX:  leUint32(c.Raw[base+20:]),
		}
	}
	return f, nil
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
