package ans

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	for k := int32(-300); k <= 300; k++ {
		if got := Unpack(Pack(k)); got != k {
			t.Fatalf("Unpack(Pack(%d)) = %d", k, got)
		}
	}
}

func TestPackZigZagOrder(t *testing.T) {
	cases := []struct {
		k    int32
		want uint32
	}{
		{0, 0}, {-1, 1}, {1, 2}, {-2, 3}, {2, 4},
	}
	for _, c := range cases {
		if got := Pack(c.k); got != c.want {
			t.Errorf("Pack(%d) = %d, want %d", c.k, got, c.want)
		}
	}
}

func TestContextFinalizeBucketsSumToTarget(t *testing.T) {
	for bucket := 0; bucket < NumBuckets; bucket++ {
		var ctx Context
		ctx.BumpFreq(Pack(0))
		ctx.BumpFreq(Pack(1))
		ctx.BumpFreq(Pack(-1))
		ctx.Finalize(bucket)

		var total uint32
		for _, f := range ctx.Freqs {
			total += f
		}
		want := uint32(1) << ctx.MaxFreqBits
		if total != want {
			t.Errorf("bucket %d: total freq = %d, want %d (2^%d)", bucket, total, want, ctx.MaxFreqBits)
		}
		if ctx.CDF[AlphabetSize] != total {
			t.Errorf("bucket %d: final CDF entry = %d, want %d", bucket, ctx.CDF[AlphabetSize], total)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	residuals := []int32{0, 1, -1, 5, -5, 2, 0, 0, -3, 10, -17, 4}

	var ctx Context
	for _, r := range residuals {
		ctx.BumpFreq(Pack(r))
	}
	ctx.Finalize(4)

	enc := NewEncoder(&ctx)
	for _, r := range residuals {
		enc.Put(r)
	}
	stream := enc.Finish()

	var decCtx Context
	decCtx.FinalizeWithBits(4, ctx.MaxFreqBits)
	dec := NewDecoder(stream, &decCtx)
	for i, want := range residuals {
		if got := dec.Next(); got != want {
			t.Fatalf("residual %d: got %d, want %d", i, got, want)
		}
	}
}

func TestChannelEncoderDecoderRoundTrip(t *testing.T) {
	type item struct {
		bucket   int
		residual int32
	}
	items := []item{
		{0, 1}, {3, -4}, {0, 0}, {9, 100}, {9, -100}, {2, 7}, {0, -1}, {5, 3},
	}

	enc := NewChannelEncoder()
	for _, it := range items {
		enc.Put(it.bucket, it.residual)
	}
	data, maxFreqBits := enc.Finish()

	dec := NewChannelDecoder(data, maxFreqBits)
	for i, it := range items {
		if got := dec.Next(it.bucket); got != it.residual {
			t.Fatalf("item %d (bucket %d): got %d, want %d", i, it.bucket, got, it.residual)
		}
	}
}
