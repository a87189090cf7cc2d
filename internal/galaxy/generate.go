package galaxy

import (
	"math"
	"math/rand"
)

// spectrTypes lists the star spectral classes a generated galaxy may contain,
// ordered by rough prevalence the way the original galaxy_gen module
// weighted its table.
var spectrTypes = []string{"M", "K", "G", "F", "A", "B", "O", "WhiteDwarf", "NeutronStar", "BlackHole"}

var resourcePool = []string{"Iron", "Copper", "Silicon", "Titanium", "Coal", "CrudeOil", "FireIce", "Hydrogen", "Deuterium", "KimberliteOre"}

// Generate deterministically produces a Galaxy from desc. Equal descriptors
// (including Seed) always produce byte-identical galaxies: the only entropy
// source is a math/rand.Rand seeded from desc.Seed.
func Generate(desc GameDesc) Galaxy {
	rng := rand.New(rand.NewSource(int64(desc.Seed)))

	starCount := desc.StarCount
	if starCount <= 0 {
		starCount = Default().StarCount
	}
	radius := desc.GalaxyRadio
	if radius <= 0 {
		radius = Default().GalaxyRadio
	}

	stars := make([]Star, starCount)
	for i := 0; i < starCount; i++ {
		stars[i] = generateStar(rng, i, radius, desc.Resource)
	}
	stars[0].BirthPlanet = true

	return Galaxy{Seed: desc.Seed, Stars: stars}
}

func generateStar(rng *rand.Rand, index int, radius float64, resourceMultiplier int) Star {
	angle := rng.Float64() * 2 * math.Pi
	dist := rng.Float64() * radius
	height := (rng.Float64() - 0.5) * radius * 0.1

	if resourceMultiplier <= 0 {
		resourceMultiplier = 1
	}

	return Star{
		Index:       index,
		X:           dist * math.Cos(angle),
		Y:           height,
		Z:           dist * math.Sin(angle),
		SpectrType:  spectrTypes[rng.Intn(len(spectrTypes))],
		PlanetCount: 1 + rng.Intn(8),
		Resources:   pickResources(rng, resourceMultiplier),
	}
}

func pickResources(rng *rand.Rand, multiplier int) []string {
	count := 1 + rng.Intn(4)*multiplier
	if count > len(resourcePool) {
		count = len(resourcePool)
	}
	picked := make([]string, 0, count)
	seen := make(map[int]bool, count)
	for len(picked) < count {
		idx := rng.Intn(len(resourcePool))
		if seen[idx] {
			continue
		}
		seen[idx] = true
		picked = append(picked, resourcePool[idx])
	}
	return picked
}
