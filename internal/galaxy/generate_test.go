package galaxy

import "testing"

func TestGenerate_Deterministic(t *testing.T) {
	desc := Default()
	desc.Seed = 42

	a := Generate(desc)
	b := Generate(desc)

	if len(a.Stars) != len(b.Stars) {
		t.Fatalf("star count differs across identical generations: %d vs %d", len(a.Stars), len(b.Stars))
	}
	for i := range a.Stars {
		sa, sb := a.Stars[i], b.Stars[i]
		if sa.X != sb.X || sa.Y != sb.Y || sa.Z != sb.Z || sa.SpectrType != sb.SpectrType || sa.PlanetCount != sb.PlanetCount {
			t.Fatalf("star %d differs between identical generations: %+v vs %+v", i, sa, sb)
		}
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a := Generate(GameDesc{Seed: 1, StarCount: 16, GalaxyRadio: 32})
	b := Generate(GameDesc{Seed: 2, StarCount: 16, GalaxyRadio: 32})

	same := true
	for i := range a.Stars {
		if a.Stars[i].X != b.Stars[i].X {
			same = false
			break
		}
	}
	if same {
		t.Fatal("galaxies generated from different seeds are identical")
	}
}

func TestGenerate_BirthPlanetOnFirstStar(t *testing.T) {
	g := Generate(GameDesc{Seed: 7, StarCount: 4, GalaxyRadio: 10})
	if !g.Stars[0].BirthPlanet {
		t.Fatal("expected star 0 to be flagged as the birth planet")
	}
	for i := 1; i < len(g.Stars); i++ {
		if g.Stars[i].BirthPlanet {
			t.Fatalf("star %d unexpectedly flagged as birth planet", i)
		}
	}
}

func TestGenerate_UsesDefaultsWhenUnset(t *testing.T) {
	g := Generate(GameDesc{Seed: 9})
	if len(g.Stars) != Default().StarCount {
		t.Fatalf("expected default star count %d, got %d", Default().StarCount, len(g.Stars))
	}
}
