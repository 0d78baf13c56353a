package palette

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clampInt(v int) int {
	return min(max(v, 0), 255)
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, []string{"red", "orange", "yellow", "green", "cyan", "blue", "purple", "black", "white"}, c.Names())

	orange, ok := c.Lookup("orange")
	require.True(t, ok)
	assert.Equal(t, RGB{R: 255, G: 165, B: 0}, orange.RGB)

	purple, ok := c.Lookup("purple")
	require.True(t, ok)
	assert.Equal(t, RGB{R: 128, G: 0, B: 128}, purple.RGB)

	assert.Equal(t, 40, c.Jitter("red"))
	assert.Equal(t, 25, c.Jitter("black"))
	assert.Equal(t, 25, c.Jitter("white"))
}

func TestNewCatalog_FallbackJitter(t *testing.T) {
	c, err := NewCatalog([]Entry{
		{Name: "grey", Hex: "#808080", Jitter: -1},
		{Name: White, Hex: "#ffffff", Jitter: 10},
	}, 17)
	require.NoError(t, err)

	assert.Equal(t, 17, c.Jitter("grey"))
	assert.Equal(t, 10, c.Jitter(White))
	assert.Equal(t, 17, c.Jitter("not-listed"))
}

func TestNewCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		entries  []Entry
		fallback int
	}{
		{"empty", nil, 30},
		{"missing name", []Entry{{Hex: "#000000"}}, 30},
		{"duplicate", []Entry{{Name: "a", Hex: "#000000"}, {Name: "a", Hex: "#ffffff"}}, 30},
		{"bad hex", []Entry{{Name: "a", Hex: "zzz"}}, 30},
		{"jitter too large", []Entry{{Name: "a", Hex: "#000000", Jitter: 300}}, 30},
		{"bad fallback", []Entry{{Name: "a", Hex: "#000000"}}, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.entries, tt.fallback)
			assert.Error(t, err)
		})
	}
}

func TestSample_WithinJitterBounds(t *testing.T) {
	c := DefaultCatalog()
	rng := rand.New(rand.NewPCG(1, 2))

	for _, name := range c.Names() {
		if name == White {
			continue
		}
		base, _ := c.Lookup(name)
		r := c.Jitter(name)
		for i := 0; i < 500; i++ {
			got := c.Sample(name, rng)
			for ch, pair := range [][2]uint8{{got.R, base.RGB.R}, {got.G, base.RGB.G}, {got.B, base.RGB.B}} {
				lo, hi := clampInt(int(pair[1])-r), clampInt(int(pair[1])+r)
				if int(pair[0]) < lo || int(pair[0]) > hi {
					t.Fatalf("%s channel %d: got %d, want within [%d,%d]", name, ch, pair[0], lo, hi)
				}
			}
		}
	}
}

func TestSample_WhiteFloor(t *testing.T) {
	// A wide radius makes the floor do real work.
	c, err := NewCatalog([]Entry{{Name: White, Hex: "#ffffff", Jitter: 200}}, 0)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(7, 7))

	for i := 0; i < 1000; i++ {
		got := c.Sample(White, rng)
		if got.R < WhiteFloor || got.G < WhiteFloor || got.B < WhiteFloor {
			t.Fatalf("white sample %+v below floor %d", got, WhiteFloor)
		}
	}
}

func TestSample_UnknownColorPanics(t *testing.T) {
	c := DefaultCatalog()
	rng := rand.New(rand.NewPCG(1, 1))
	assert.Panics(t, func() { c.Sample("magenta", rng) })
}

func TestSample_Deterministic(t *testing.T) {
	c := DefaultCatalog()
	a := rand.New(rand.NewPCG(42, 0))
	b := rand.New(rand.NewPCG(42, 0))
	for i := 0; i < 20; i++ {
		assert.Equal(t, c.Sample("cyan", a), c.Sample("cyan", b))
	}
}

func TestJitter_ZeroRadius(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	base := RGB{R: 12, G: 34, B: 56}
	assert.Equal(t, base, Jitter(base, 0, rng))
}

func TestNearest(t *testing.T) {
	c := DefaultCatalog()
	for _, name := range c.Names() {
		bc, _ := c.Lookup(name)
		assert.Equal(t, name, c.Nearest(bc.RGB), "reference value of %s", name)
	}
	assert.Equal(t, "red", c.Nearest(RGB{R: 230, G: 20, B: 10}))
	assert.Equal(t, "white", c.Nearest(RGB{R: 240, G: 235, B: 250}))
}

func TestRGB_Hex(t *testing.T) {
	assert.Equal(t, "#ffa500", RGB{R: 255, G: 165, B: 0}.Hex())
	assert.Equal(t, "#000000", RGB{}.Hex())
}
