package ans

import "encoding/binary"

// stateLowerBound is the renormalization floor: the 64-bit state x is kept
// in [stateLowerBound, stateLowerBound<<8) between symbols.
const stateLowerBound uint64 = 1 << 31

// Encoder accumulates residuals for one bucket in source (forward) order
// and produces the rANS-coded byte stream on Finish. rANS requires encoding
// symbols in reverse order so that decode naturally proceeds forward
// (spec.md §4.5: "the multi-stream stack unwinds LIFO, so the decoder
// naturally reads in the same forward order") — Put just buffers the packed
// symbols; Finish does the actual reverse-order coding.
type Encoder struct {
	ctx     *Context
	symbols []uint32
}

// NewEncoder returns an encoder targeting the given bucket context. The
// context must be finalized before Finish is called.
func NewEncoder(ctx *Context) *Encoder {
	return &Encoder{ctx: ctx}
}

// Put buffers one residual for this bucket, in source scan order.
func (e *Encoder) Put(residual int32) {
	e.ctx.BumpFreq(Pack(residual))
	e.symbols = append(e.symbols, Pack(residual))
}

// Finish replays the buffered symbols in reverse and returns the coded
// byte stream, led by the final 8-byte state (little-endian) needed to seed
// decoding.
func (e *Encoder) Finish() []byte {
	scaleBits := e.ctx.MaxFreqBits
	state := stateLowerBound
	var buf []byte

	for i := len(e.symbols) - 1; i >= 0; i-- {
		sym := e.symbols[i]
		start := e.ctx.CDF[sym]
		freq := e.ctx.Freqs[sym]

		xMax := ((stateLowerBound >> scaleBits) << 8) * uint64(freq)
		for state >= xMax {
			buf = append(buf, byte(state))
			state >>= 8
		}
		state = ((state / uint64(freq)) << scaleBits) + (state % uint64(freq)) + uint64(start)
	}

	var tail [8]byte
	binary.BigEndian.PutUint64(tail[:], state)
	buf = append(buf, tail[:]...)
	reverseBytes(buf)
	return buf
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Decoder reads one bucket's rANS stream forward, reproducing the original
// residual order.
type Decoder struct {
	ctx *Context
	buf []byte
	pos int
	x   uint64
}

// NewDecoder initializes a decoder over buf using the given finalized
// context (MaxFreqBits must already be set — FinalizeWithBits on the
// decoder side, from the stored EHD value).
func NewDecoder(buf []byte, ctx *Context) *Decoder {
	return &Decoder{
		ctx: ctx,
		buf: buf,
		pos: 8,
		x:   binary.LittleEndian.Uint64(buf[:8]),
	}
}

// Next decodes and returns the next residual.
func (d *Decoder) Next() int32 {
	scaleBits := d.ctx.MaxFreqBits
	mask := (uint64(1) << scaleBits) - 1

	cf := uint32(d.x & mask)
	sym := d.ctx.symbolAt(cf)
	start := d.ctx.CDF[sym]
	freq := d.ctx.Freqs[sym]

	d.x = uint64(freq)*(d.x>>scaleBits) + uint64(cf) - uint64(start)
	for d.x < stateLowerBound {
		d.x = (d.x << 8) | uint64(d.buf[d.pos])
		d.pos++
	}
	return Unpack(sym)
}
