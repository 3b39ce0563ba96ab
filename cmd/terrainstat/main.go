// terrainstat is a headless CLI for inspecting generated terrain.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/terraview/internal/engine/terrain"
	"github.com/Faultbox/terraview/internal/logger"
	"github.com/Faultbox/terraview/pkg/noise"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "export":
		cmdExport(args)
	case "bench":
		cmdBench(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terrainstat - procedural terrain inspector

Usage:
  terrainstat <command> [options]

Commands:
  info                 Print a YAML summary of the generated mesh
  export -o <file.obj> Write the mesh as Wavefront OBJ
  bench  [-n runs]     Time repeated regenerations

Common options:
  -seed <n>            Terrain seed (default 0)
  -size <f>            Side length, up to 100 (default 10)
  -subdivisions <n>    Cells per side, 1 to 300 (default 100)
  -noise <kind>        perlin or opensimplex (default perlin)

Examples:
  terrainstat info -seed 42
  terrainstat export -subdivisions 300 -o terrain.obj
  terrainstat bench -n 50 -noise opensimplex`)
}

// terrainFlags registers the parameter flags shared by every command.
type terrainFlags struct {
	seed         *uint
	size         *float64
	subdivisions *uint
	noise        *string
}

func newFlagSet(name string) (*flag.FlagSet, *terrainFlags) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	d := terrain.DefaultParameters()
	return fs, &terrainFlags{
		seed:         fs.Uint("seed", uint(d.Seed), "Terrain seed"),
		size:         fs.Float64("size", float64(d.Size), "Terrain side length"),
		subdivisions: fs.Uint("subdivisions", uint(d.Subdivisions), "Cells per side"),
		noise:        fs.String("noise", string(noise.KindPerlin), "Noise backend"),
	}
}

// parameters checks the flag values against the editing limits and returns
// the terrain parameters.
func (tf *terrainFlags) parameters() (terrain.Parameters, error) {
	if *tf.seed > math.MaxUint32 {
		return terrain.Parameters{}, fmt.Errorf("-seed %d exceeds %d", *tf.seed, uint32(math.MaxUint32))
	}
	if *tf.subdivisions > math.MaxUint32 {
		return terrain.Parameters{}, fmt.Errorf("%w: -subdivisions %d", terrain.ErrInvalidSubdivisions, *tf.subdivisions)
	}
	p := terrain.Parameters{
		Seed:         uint32(*tf.seed),
		Size:         float32(*tf.size),
		Subdivisions: uint32(*tf.subdivisions),
	}
	if err := terrain.DefaultLimits().Check(p); err != nil {
		return terrain.Parameters{}, err
	}
	return p, nil
}

// resolve validates the flags and returns the generator and parameters.
func (tf *terrainFlags) resolve() (*terrain.Generator, terrain.Parameters) {
	p, err := tf.parameters()
	if err != nil {
		fatalf("%v", err)
	}

	kind, err := noise.ParseKind(*tf.noise)
	if err != nil {
		fatalf("%v", err)
	}
	gen, err := terrain.NewGenerator(kind)
	if err != nil {
		fatalf("%v", err)
	}
	return gen, p
}

func cmdInfo(args []string) {
	fs, tf := newFlagSet("info")
	fs.Parse(args)
	gen, p := tf.resolve()

	start := time.Now()
	mesh := gen.Generate(p)
	elapsed := time.Since(start)

	out, err := yaml.Marshal(terrain.Summarize(gen.Kind(), p, mesh))
	if err != nil {
		fatalf("encoding summary: %v", err)
	}
	fmt.Print(string(out))
	fmt.Printf("generation_ms: %.3f\n", float64(elapsed)/float64(time.Millisecond))
}

func cmdExport(args []string) {
	fs, tf := newFlagSet("export")
	outPath := fs.String("o", "terrain.obj", "Output OBJ path")
	fs.Parse(args)
	gen, p := tf.resolve()

	f, err := os.Create(*outPath)
	if err != nil {
		fatalf("%v", err)
	}
	defer f.Close()

	mesh := gen.Generate(p)
	if err := terrain.WriteOBJ(f, mesh); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("Wrote %s (%d vertices, %d triangles)\n", *outPath, len(mesh.Vertices), mesh.TriangleCount())
}

func cmdBench(args []string) {
	fs, tf := newFlagSet("bench")
	runs := fs.Int("n", 20, "Number of regenerations")
	verbose := fs.Bool("v", false, "Log each regeneration")
	fs.Parse(args)
	gen, p := tf.resolve()

	if *verbose {
		if err := logger.Init("debug", ""); err != nil {
			fatalf("%v", err)
		}
		defer logger.Sync()
	}

	// Each run reseeds the entity and lets one maintenance pass rebuild it,
	// the same path a frame takes after a parameter edit.
	entity := terrain.NewEntity(p, gen.Generate)
	var total, worst time.Duration
	for i := 0; i < *runs; i++ {
		entity.SetSeed(p.Seed + uint32(i))
		start := time.Now()
		entity.Maintain(uint64(i + 1))
		d := time.Since(start)
		total += d
		worst = max(worst, d)
	}

	if *runs > 0 {
		fmt.Printf("%d runs, %d vertices: avg %.3fms, worst %.3fms\n",
			*runs, p.VertexCount(),
			float64(total)/float64(*runs)/float64(time.Millisecond),
			float64(worst)/float64(time.Millisecond))
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
