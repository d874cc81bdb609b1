package modeling

import (
	"testing"

	"github.com/twindragon/frif/internal/lattice"
	"github.com/twindragon/frif/internal/wavelet"
)

// memImage is a minimal PixelSource/PixelSink, local to this package's tests
// to avoid an import cycle with the wavelet package's own test helper.
type memImage struct {
	width, height int
	plane         []int32
}

func newMemImage(width, height int) *memImage {
	return &memImage{width: width, height: height, plane: make([]int32, width*height)}
}

func (m *memImage) GetPixel(x, y int32, ch int) (int32, bool) {
	if x < 0 || y < 0 || int(x) >= m.width || int(y) >= m.height {
		return 0, false
	}
	return m.plane[int(y)*m.width+int(x)], true
}

func (m *memImage) SetPixel(x, y int32, v int32, ch int) {
	if x < 0 || y < 0 || int(x) >= m.width || int(y) >= m.height {
		return
	}
	m.plane[int(y)*m.width+int(x)] = v
}

func TestGroupForClassification(t *testing.T) {
	const depth = 9
	if g := GroupFor(depth-1, depth); g != GroupTop {
		t.Errorf("level depth-1 classified as %v, want GroupTop", g)
	}
	if g := GroupFor(depth-2, depth); g != GroupMid {
		t.Errorf("level depth-2 classified as %v, want GroupMid", g)
	}
	if g := GroupFor(1, depth); g != GroupDeep {
		t.Errorf("level 1 classified as %v, want GroupDeep", g)
	}
	if g := GroupFor(depth-3, depth); g != GroupDeep {
		t.Errorf("level depth-3 classified as %v, want GroupDeep", g)
	}
}

func TestGradientsSymmetric(t *testing.T) {
	n := [6]int32{10, 3, 7, -4, 2, 9}
	g := Gradients(n)
	if g[0] != 1 {
		t.Errorf("W0 = %v, want 1", g[0])
	}
	want := [6]float64{1, 14, 4, 7, 6, 5}
	if g != want {
		t.Fatalf("Gradients(%v) = %v, want %v", n, g, want)
	}
}

func TestTrainOnAnalyzedLatticeProducesFiniteModel(t *testing.T) {
	const w, h = 17, 13
	src := newMemImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.plane[y*w+x] = int32((x*13 + y*29) % 255)
		}
	}

	lat, err := lattice.Build(w, h)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	wavelet.Analyze(lat, src, 1)
	if err := lat.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	var m Model
	Train(&m, lat, 0)

	for g := Group(0); g < numGroups; g++ {
		for j := 0; j < 6; j++ {
			if v := m.Value[0][g][j]; v != v { // NaN check
				t.Fatalf("Value[%d][%d] is NaN", g, j)
			}
			if v := m.Width[0][g][j]; v != v {
				t.Fatalf("Width[%d][%d] is NaN", g, j)
			}
		}
	}
}

func TestTrainOnAllZeroImageYieldsZeroModel(t *testing.T) {
	const w, h = 10, 10
	src := newMemImage(w, h)

	lat, err := lattice.Build(w, h)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	wavelet.Analyze(lat, src, 1)
	if err := lat.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	var m Model
	Train(&m, lat, 0)

	for g := Group(0); g < numGroups; g++ {
		for j := 0; j < 6; j++ {
			if m.Value[0][g][j] != 0 {
				t.Errorf("Value[%d][%d] = %v, want 0 for an all-zero image", g, j, m.Value[0][g][j])
			}
			if m.Width[0][g][j] != 0 {
				t.Errorf("Width[%d][%d] = %v, want 0 for an all-zero image", g, j, m.Width[0][g][j])
			}
		}
	}
}
