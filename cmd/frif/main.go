// Command frif is a thin CLI around the FRIF codec: encode a PNG into a
// .frif file, decode one back to PNG, or round-trip a file and report the
// compression ratio and timing.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/twindragon/frif"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	case "bench":
		err = runBench(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "frif:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: frif <encode|decode|bench> [flags]")
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	in := fs.String("in", "", "input PNG path")
	out := fs.String("out", "", "output .frif path")
	ycbcr := fs.Bool("ycbcr", false, "transform RGB input to reversible YCbCr before coding")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("encode: -in and -out are required")
	}

	params, err := readPNGAsParams(*in)
	if err != nil {
		return err
	}

	opts := frif.DefaultEncodeOptions()
	opts.YCbCr = *ycbcr && params.Components == 3

	encoded, err := frif.Encode(params, opts)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return os.WriteFile(*out, encoded, 0644)
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	in := fs.String("in", "", "input .frif path")
	out := fs.String("out", "", "output PNG path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("decode: -in and -out are required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	result, err := frif.Decode(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return writeResultAsPNG(result, *out)
}

func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	in := fs.String("in", "", "input PNG path")
	ycbcr := fs.Bool("ycbcr", false, "transform RGB input to reversible YCbCr before coding")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("bench: -in is required")
	}

	params, err := readPNGAsParams(*in)
	if err != nil {
		return err
	}
	opts := frif.DefaultEncodeOptions()
	opts.YCbCr = *ycbcr && params.Components == 3

	encodeStart := time.Now()
	encoded, err := frif.Encode(params, opts)
	if err != nil {
		return fmt.Errorf("bench: encode: %w", err)
	}
	encodeElapsed := time.Since(encodeStart)

	decodeStart := time.Now()
	result, err := frif.Decode(encoded)
	if err != nil {
		return fmt.Errorf("bench: decode: %w", err)
	}
	decodeElapsed := time.Since(decodeStart)

	raw := len(params.PixelData)
	ratio := float64(raw) / float64(len(encoded))
	lossless := bytesEqual(params.PixelData, result.PixelData)

	fmt.Printf("dimensions:  %dx%d, %d components\n", params.Width, params.Height, params.Components)
	fmt.Printf("raw bytes:   %d\n", raw)
	fmt.Printf("coded bytes: %d (%.2fx)\n", len(encoded), ratio)
	fmt.Printf("encode:      %s\n", encodeElapsed)
	fmt.Printf("decode:      %s\n", decodeElapsed)
	fmt.Printf("lossless:    %v\n", lossless)
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func readPNGAsParams(path string) (frif.EncodeParams, error) {
	f, err := os.Open(path)
	if err != nil {
		return frif.EncodeParams{}, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return frif.EncodeParams{}, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if isGray(img) {
		data := make([]byte, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
				data[y*width+x] = g.Y
			}
		}
		return frif.EncodeParams{PixelData: data, Width: width, Height: height, Components: 1}, nil
	}

	data := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*width + x) * 3
			data[i] = byte(r >> 8)
			data[i+1] = byte(g >> 8)
			data[i+2] = byte(b >> 8)
		}
	}
	return frif.EncodeParams{PixelData: data, Width: width, Height: height, Components: 3}, nil
}

func isGray(img image.Image) bool {
	_, ok := img.(*image.Gray)
	return ok
}

func writeResultAsPNG(result *frif.DecodeResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if result.Components == 1 {
		out := image.NewGray(image.Rect(0, 0, result.Width, result.Height))
		copy(out.Pix, result.PixelData)
		return png.Encode(f, out)
	}

	out := image.NewRGBA(image.Rect(0, 0, result.Width, result.Height))
	for i := 0; i < result.Width*result.Height; i++ {
		out.Pix[i*4] = result.PixelData[i*3]
		out.Pix[i*4+1] = result.PixelData[i*3+1]
		out.Pix[i*4+2] = result.PixelData[i*3+2]
		out.Pix[i*4+3] = 255
	}
	return png.Encode(f, out)
}
