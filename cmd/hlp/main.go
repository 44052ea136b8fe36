// Command hlp is the CLI surface described in spec.md §6.5: it wires flag
// parsing, the four synthetic generators, the binary/JSON file loaders,
// and hlp.Run together, exiting 0 on success, 1 on an internal error, and
// 2 on invalid input. Peripheral by design (spec.md §1) — everything it
// does is call into exported packages, no engine logic lives here.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gilchrisn/hlp-engine/internal/config"
	"github.com/gilchrisn/hlp-engine/internal/generate"
	"github.com/gilchrisn/hlp-engine/internal/hgfile"
	"github.com/gilchrisn/hlp-engine/internal/hgjson"
	"github.com/gilchrisn/hlp-engine/internal/hlperrors"
	"github.com/gilchrisn/hlp-engine/internal/hypergraph"

	hlp "github.com/gilchrisn/hlp-engine"
)

const version = "0.1.0"

const (
	exitOK            = 0
	exitInternalError = 1
	exitInvalidInput  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hlp", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		vertices      = fs.Int("vertices", 1000, "number of vertices for generated hypergraphs")
		edges         = fs.Int("edges", 2000, "number of hyperedges for generated hypergraphs")
		iterations    = fs.Int("iterations", 100, "maximum iterations")
		tolerance     = fs.Float64("tolerance", 1e-6, "convergence tolerance in [0,1]")
		workgroupSize = fs.Int("workgroup-size", 256, "workgroup band width")
		labelClasses  = fs.Int("label-classes", 10, "number of label classes")
		labelSeed     = fs.Int64("label-seed", 1, "seed for the initial label assignment")
		seed          = fs.Int64("seed", 1, "seed for the structural generator")
		generator     = fs.String("generator", "uniform", "uniform|fixed|planted|hsbm")
		minEdgeSize   = fs.Int("min-edge-size", 2, "uniform generator: minimum hyperedge size")
		maxEdgeSize   = fs.Int("max-edge-size", 8, "uniform generator: maximum hyperedge size")
		edgeSize      = fs.Int("edge-size", 3, "fixed/planted/hsbm generator: hyperedge size")
		communities   = fs.Int("communities", 4, "planted/hsbm generator: number of communities")
		pIntra        = fs.Float64("p-intra", 0.8, "planted/hsbm generator: intra-community probability")
		pInter        = fs.Float64("p-inter", 0.2, "planted/hsbm generator: inter-community probability")
		load          = fs.String("load", "", "load a hypergraph from this file instead of generating one")
		save          = fs.String("save", "", "save the loaded/generated hypergraph to this file")
		showVersion   = fs.Bool("version", false, "print version and exit")
	)

	if err := fs.Parse(args); err != nil {
		return exitInvalidInput
	}
	if *showVersion {
		fmt.Println("hlp " + version)
		return exitOK
	}

	cfg := config.NewConfig()
	cfg.Set("engine.max_iterations", *iterations)
	cfg.Set("engine.tolerance", *tolerance)
	cfg.Set("engine.max_labels", *labelClasses)
	cfg.Set("engine.workgroup_size", *workgroupSize)
	logger := cfg.CreateLogger()

	builder, labels, err := loadOrGenerate(genParams{
		vertices: *vertices, edges: *edges,
		minEdgeSize: *minEdgeSize, maxEdgeSize: *maxEdgeSize, edgeSize: *edgeSize,
		communities: *communities, pIntra: *pIntra, pInter: *pInter,
		seed: *seed, labelSeed: *labelSeed, labelClasses: *labelClasses,
		generator: *generator, load: *load,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "hlp:", err)
		return exitCodeFor(err)
	}

	snap, err := builder.Freeze()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hlp:", err)
		return exitInvalidInput
	}

	if *save != "" {
		if err := saveHypergraph(*save, snap, labels); err != nil {
			fmt.Fprintln(os.Stderr, "hlp:", err)
			return exitCodeFor(err)
		}
	}

	opts := hlp.Options{
		MaxIterations:     cfg.MaxIterations(),
		Tolerance:         cfg.Tolerance(),
		WorkgroupSize:     cfg.WorkgroupSize(),
		MaxLabels:         cfg.MaxLabels(),
		ThresholdWGEdge:   cfg.ThresholdWGEdge(),
		ThresholdSGEdge:   cfg.ThresholdSGEdge(),
		ThresholdWGVertex: cfg.ThresholdWGVertex(),
		ThresholdSGVertex: cfg.ThresholdSGVertex(),
	}

	rec, final, err := hlp.RunWithLogger(context.Background(), snap, labels, opts, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hlp:", err)
		return exitCodeFor(err)
	}

	fmt.Printf("iterations=%d total_time_ms=%.3f\n", rec.IterationsCompleted, rec.TotalTimeMS)
	for _, m := range rec.Moments {
		fmt.Printf("  %-10s %.3fms\n", m.Label, m.DurationMS)
	}
	_ = final
	return exitOK
}

type genParams struct {
	vertices, edges                    int
	minEdgeSize, maxEdgeSize, edgeSize int
	communities                        int
	pIntra, pInter                     float64
	seed, labelSeed                    int64
	labelClasses                       int
	generator, load                    string
}

func loadOrGenerate(p genParams) (*hypergraph.Builder, []int32, error) {
	if p.load != "" {
		b, err := loadHypergraph(p.load)
		if err != nil {
			return nil, nil, err
		}
		labels := b.Labels()
		if labels == nil {
			labels = generate.Labels(b.NumVertices(), p.labelClasses, p.labelSeed)
		}
		return b, labels, nil
	}

	opts := generate.Options{
		NumVertices: p.vertices, NumEdges: p.edges,
		MinEdgeSize: p.minEdgeSize, MaxEdgeSize: p.maxEdgeSize, EdgeSize: p.edgeSize,
		Communities: p.communities, PIntra: p.pIntra, PInter: p.pInter,
		Seed: p.seed, LabelSeed: p.labelSeed, NumClasses: p.labelClasses,
	}

	var res *generate.Result
	var err error
	switch strings.ToLower(p.generator) {
	case "uniform":
		res, err = generate.Uniform(opts)
	case "fixed":
		res, err = generate.Fixed(opts)
	case "planted":
		res, err = generate.Planted(opts)
	case "hsbm":
		res, err = generate.HSBM(opts)
	default:
		return nil, nil, hlperrors.NewInvalidArgument("generator", "must be one of uniform|fixed|planted|hsbm")
	}
	if err != nil {
		return nil, nil, hlperrors.NewInvalidArgument("generator", err.Error())
	}
	labels := generate.Labels(p.vertices, p.labelClasses, p.labelSeed)
	return res.Builder, labels, nil
}

func loadHypergraph(path string) (*hypergraph.Builder, error) {
	if strings.HasSuffix(path, ".json") {
		return hgjson.Load(path)
	}
	return hgfile.Load(path)
}

func saveHypergraph(path string, snap *hypergraph.Snapshot, labels []int32) error {
	if strings.HasSuffix(path, ".json") {
		return hgjson.Save(path, snap, labels)
	}
	return hgfile.Save(path, snap, labels)
}

func exitCodeFor(err error) int {
	switch err.(type) {
	case *hlperrors.InvalidArgumentError, *hlperrors.IOError:
		return exitInvalidInput
	default:
		return exitInternalError
	}
}
