package palette

import (
	"fmt"
	"math/rand/v2"
)

// WhiteFloor is the minimum channel value of a sampled white.
const WhiteFloor = 230

// Sample returns a render color for the base color called name. Each channel
// is drawn uniformly from [base-r, base+r] using the color's jitter radius r
// and clamped to [0,255]. White is additionally floored at WhiteFloor so it
// stays visibly light.
//
// name must be a catalog color; anything else is a caller bug and panics.
func (c *Catalog) Sample(name string, rng *rand.Rand) RGB {
	bc, ok := c.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("palette: unknown color %q", name))
	}

	out := Jitter(bc.RGB, c.Jitter(name), rng)
	if name == White {
		out.R = max(out.R, WhiteFloor)
		out.G = max(out.G, WhiteFloor)
		out.B = max(out.B, WhiteFloor)
	}
	return out
}

// Jitter perturbs each channel of base by a uniform offset in
// [-radius, radius], clamping to the 8-bit range.
func Jitter(base RGB, radius int, rng *rand.Rand) RGB {
	return RGB{
		R: jitterChannel(base.R, radius, rng),
		G: jitterChannel(base.G, radius, rng),
		B: jitterChannel(base.B, radius, rng),
	}
}

func jitterChannel(v uint8, radius int, rng *rand.Rand) uint8 {
	if radius <= 0 {
		return v
	}
	n := int(v) + rng.IntN(2*radius+1) - radius
	return uint8(min(max(n, 0), 255))
}
