package terrain

import "testing"

// countingGenerator wraps Generate and records every call.
type countingGenerator struct {
	calls  int
	params []Parameters
}

func (c *countingGenerator) generate(p Parameters) *Mesh {
	c.calls++
	c.params = append(c.params, p)
	return Generate(p)
}

func TestEntityStartsDirty(t *testing.T) {
	e := NewEntity(DefaultParameters(), nil)
	if e.State() != StateDirty {
		t.Fatalf("new entity state = %v, want dirty", e.State())
	}
	if e.Mesh() != nil {
		t.Fatal("new entity already has a mesh")
	}

	if !e.Maintain(1) {
		t.Fatal("first Maintain did not build a mesh")
	}
	if e.State() != StateClean {
		t.Errorf("state after Maintain = %v, want clean", e.State())
	}
	if e.Mesh() == nil {
		t.Fatal("mesh is nil after Maintain")
	}
	if e.Generation() != 1 {
		t.Errorf("Generation() = %d, want 1", e.Generation())
	}
}

func TestEntityCleanMaintainIsNoop(t *testing.T) {
	gen := &countingGenerator{}
	e := NewEntity(DefaultParameters(), gen.generate)

	e.Maintain(1)
	mesh := e.Mesh()
	for frame := uint64(2); frame < 10; frame++ {
		if e.Maintain(frame) {
			t.Fatalf("frame %d rebuilt a clean entity", frame)
		}
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
	if e.Mesh() != mesh {
		t.Error("mesh pointer changed without a parameter write")
	}
}

func TestEntityWritesCoalesceIntoOneBuild(t *testing.T) {
	gen := &countingGenerator{}
	e := NewEntity(DefaultParameters(), gen.generate)
	e.Maintain(1)

	e.SetSize(20)
	e.SetSubdivisions(50)
	e.SetSeed(7)
	e.SetSubdivisions(60)
	if e.State() != StateDirty {
		t.Fatalf("state after writes = %v, want dirty", e.State())
	}

	if !e.Maintain(2) {
		t.Fatal("Maintain did not rebuild a dirty entity")
	}
	if gen.calls != 2 {
		t.Fatalf("generator called %d times, want 2", gen.calls)
	}

	final := Parameters{Seed: 7, Size: 20, Subdivisions: 60}
	if gen.params[1] != final {
		t.Errorf("rebuilt with %+v, want %+v", gen.params[1], final)
	}
	if !e.Mesh().Equal(Generate(final)) {
		t.Error("bound mesh differs from Generate(final parameters)")
	}
}

func TestEntitySameFrameIsNoop(t *testing.T) {
	gen := &countingGenerator{}
	e := NewEntity(DefaultParameters(), gen.generate)

	e.Maintain(5)
	e.SetSeed(99)
	if e.Maintain(5) {
		t.Fatal("second Maintain in the same frame rebuilt")
	}
	if e.State() != StateDirty {
		t.Errorf("state = %v, want dirty until the next frame", e.State())
	}
	if !e.Maintain(6) {
		t.Fatal("next frame did not rebuild")
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want 2", gen.calls)
	}
}

func TestEntityWriteAfterBuildDirtiesAgain(t *testing.T) {
	e := NewEntity(DefaultParameters(), nil)
	e.Maintain(1)
	v := e.Version()

	e.SetParameters(Parameters{Seed: 3, Size: 5, Subdivisions: 4})
	if e.State() != StateDirty {
		t.Fatalf("state = %v, want dirty", e.State())
	}
	if e.Version() != v+1 {
		t.Errorf("Version() = %d, want %d", e.Version(), v+1)
	}

	e.Maintain(2)
	if got := len(e.Mesh().Vertices); got != 25 {
		t.Errorf("vertex count = %d, want 25", got)
	}
}

func TestStateString(t *testing.T) {
	if StateClean.String() != "clean" || StateDirty.String() != "dirty" {
		t.Errorf("got %q/%q", StateClean, StateDirty)
	}
}
