package ans

import "encoding/binary"

// ChannelEncoder drives the NumBuckets independent encoders for one image
// channel. Callers Put residuals into whichever bucket predict() selects,
// in scan order, then call Finish once every residual has been fed.
type ChannelEncoder struct {
	Contexts [NumBuckets]*Context
	encoders [NumBuckets]*Encoder
}

// NewChannelEncoder allocates fresh (unfinalized) contexts for every bucket.
func NewChannelEncoder() *ChannelEncoder {
	c := &ChannelEncoder{}
	for b := 0; b < NumBuckets; b++ {
		c.Contexts[b] = &Context{}
		c.encoders[b] = NewEncoder(c.Contexts[b])
	}
	return c
}

// Put feeds one residual into the given bucket's stream.
func (c *ChannelEncoder) Put(bucket int, residual int32) {
	c.encoders[bucket].Put(residual)
}

// Finish finalizes every bucket's frequency table (Laplace seeding +
// normalization) and rANS-codes its buffered residuals, returning the
// combined DAT payload: one length-prefixed stream per bucket, in bucket
// order 0..9. The per-bucket max_freq_bits (needed to reseed on decode)
// are returned separately — they are what the EHD segments carry.
func (c *ChannelEncoder) Finish() (data []byte, maxFreqBits [NumBuckets]uint32) {
	for b := 0; b < NumBuckets; b++ {
		c.Contexts[b].Finalize(b)
		maxFreqBits[b] = c.Contexts[b].MaxFreqBits
	}
	for b := 0; b < NumBuckets; b++ {
		stream := c.encoders[b].Finish()
		var length [4]byte
		binary.LittleEndian.PutUint32(length[:], uint32(len(stream)))
		data = append(data, length[:]...)
		data = append(data, stream...)
	}
	return data, maxFreqBits
}

// ChannelDecoder mirrors ChannelEncoder on the decode side: given the
// max_freq_bits read from each bucket's EHD segment and the channel's DAT
// payload, it reseeds every bucket's frequency table identically to the
// encoder and exposes one Decoder per bucket.
type ChannelDecoder struct {
	decoders [NumBuckets]*Decoder
}

// NewChannelDecoder parses data (as produced by ChannelEncoder.Finish) into
// NumBuckets independent decoders.
func NewChannelDecoder(data []byte, maxFreqBits [NumBuckets]uint32) *ChannelDecoder {
	d := &ChannelDecoder{}
	pos := 0
	for b := 0; b < NumBuckets; b++ {
		length := binary.LittleEndian.Uint32(data[pos : pos+4])
		pos += 4
		stream := data[pos : pos+int(length)]
		pos += int(length)

		ctx := &Context{}
		ctx.FinalizeWithBits(b, maxFreqBits[b])
		d.decoders[b] = NewDecoder(stream, ctx)
	}
	return d
}

// Next decodes the next residual from the given bucket's stream.
func (d *ChannelDecoder) Next(bucket int) int32 {
	return d.decoders[bucket].Next()
}
