package lighting

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/terraview/pkg/math"
)

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-5
}

func TestDefaultPointLight(t *testing.T) {
	l := DefaultPointLight()
	if l.Position != (math.Vec3{Y: 10}) || l.Intensity != 1500 {
		t.Errorf("unexpected default light %+v", l)
	}
}

func TestFalloff(t *testing.T) {
	l := DefaultPointLight()

	// 10 units below the light, 1/4 of the squared range.
	want := float32(1500 / (4 * gomath.Pi) * (0.9375 * 0.9375) / 100)
	if got := l.Falloff(100); !near(got, want) {
		t.Errorf("Falloff(100) = %v, want %v", got, want)
	}
	if got := l.Falloff(400); got != 0 {
		t.Errorf("Falloff at range = %v, want 0", got)
	}
	if got := l.Falloff(900); got != 0 {
		t.Errorf("Falloff beyond range = %v, want 0", got)
	}
	if l.Falloff(25) <= l.Falloff(64) {
		t.Error("light should get weaker with distance")
	}
	if got := l.Falloff(0); gomath.IsInf(float64(got), 0) || gomath.IsNaN(float64(got)) {
		t.Errorf("Falloff(0) = %v", got)
	}
}

func TestIlluminance(t *testing.T) {
	l := DefaultPointLight()
	up := math.Vec3{Y: 1}

	direct := l.Illuminance(math.Vec3{}, up)
	if !near(direct, l.Falloff(100)) {
		t.Errorf("direct illuminance = %v, want %v", direct, l.Falloff(100))
	}

	// Raw, unnormalized normals shade the same as unit normals.
	if raw := l.Illuminance(math.Vec3{}, math.Vec3{Y: 6}); !near(raw, direct) {
		t.Errorf("illuminance with raw normal = %v, want %v", raw, direct)
	}

	if back := l.Illuminance(math.Vec3{}, math.Vec3{Y: -1}); back != 0 {
		t.Errorf("back-facing illuminance = %v, want 0", back)
	}

	slanted := l.Illuminance(math.Vec3{X: 5}, up)
	if slanted <= 0 || slanted >= direct {
		t.Errorf("slanted illuminance = %v, want in (0, %v)", slanted, direct)
	}
}

func TestPointLightBuffer(t *testing.T) {
	b := NewPointLightBuffer()
	for i := 0; i < MaxPointLights; i++ {
		if !b.AddLight(PointLight{Position: math.Vec3{X: float32(i)}, Range: float32(i + 1)}) {
			t.Fatalf("AddLight %d failed", i)
		}
	}
	if b.AddLight(DefaultPointLight()) {
		t.Error("AddLight should fail when the buffer is full")
	}

	pos := b.Positions()
	if len(pos) != MaxPointLights*3 || pos[3] != 1 || pos[6] != 2 {
		t.Errorf("unexpected positions %v", pos)
	}
	if r := b.Ranges(); r[MaxPointLights-1] != MaxPointLights {
		t.Errorf("unexpected ranges %v", r)
	}

	b.SetLights(DefaultPointLight())
	if b.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", b.Count())
	}
	if c := b.Colors(); c[0] != 1 || c[3] != 0 {
		t.Errorf("unexpected colors %v", c)
	}
	if in := b.Intensities(); in[0] != 1500 || in[1] != 0 {
		t.Errorf("unexpected intensities %v", in)
	}
}
