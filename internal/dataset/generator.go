package dataset

import (
	"context"
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ironsheep/shapegen/internal/classes"
	"github.com/ironsheep/shapegen/internal/config"
	"github.com/ironsheep/shapegen/internal/layout"
	"github.com/ironsheep/shapegen/internal/split"
)

// splitStream is the PCG stream reserved for the split shuffle. Sample
// streams use the sample index, which never reaches it.
const splitStream = math.MaxUint64

// Summary describes a finished run.
type Summary struct {
	RunID  string        `json:"run_id"`
	Seed   uint64        `json:"seed"`
	Output string        `json:"output"`
	Total  int           `json:"total"`
	Train  int           `json:"train"`
	Val    int           `json:"val"`
	Failed []int         `json:"failed,omitempty"`
	Took   time.Duration `json:"took"`
}

// Written returns the number of samples persisted.
func (s *Summary) Written() int { return s.Train + s.Val }

// Generator runs one dataset generation.
type Generator struct {
	cfg       *config.Config
	log       *zap.Logger
	paths     Paths
	assembler *Assembler
	seed      uint64
	assign    split.Assignment
	runID     string
}

// NewGenerator validates cfg and prepares the catalogs and the split
// assignment. A zero cfg.Seed draws a fresh random seed.
func NewGenerator(cfg *config.Config, log *zap.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	kinds, err := cfg.ShapeKinds()
	if err != nil {
		return nil, err
	}
	planner, err := layout.New(cfg.Width, cfg.Height, cfg.Margin)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}
	assign, err := split.Assign(cfg.Count, cfg.ValRatio, splitRNG(seed))
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	return &Generator{
		cfg:       cfg,
		log:       log.With(zap.String("run_id", runID)),
		paths:     Paths{Root: cfg.Output},
		assembler: NewAssembler(catalog, kinds, planner),
		seed:      seed,
		assign:    assign,
		runID:     runID,
	}, nil
}

// Seed returns the effective seed of the run.
func (g *Generator) Seed() uint64 { return g.seed }

// Paths returns the output locations.
func (g *Generator) Paths() Paths { return g.paths }

// Registry returns the class registry.
func (g *Generator) Registry() *classes.Registry { return g.assembler.Registry() }

// Assignment returns the split of every sample index.
func (g *Generator) Assignment() split.Assignment { return g.assign }

// Sample builds sample index without writing it.
func (g *Generator) Sample(index int) (*Sample, *image.NRGBA) {
	return g.assembler.Build(index, g.assign[index], sampleRNG(g.seed, index))
}

// Run writes the whole dataset. Setup failures abort with a nil Summary.
// Sample failures are collected: the returned Summary lists the failed
// indices and the error combines their causes. A cancelled context stops
// dispatching new samples.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	g.log.Info("starting generation",
		zap.Uint64("seed", g.seed),
		zap.Int("count", g.cfg.Count),
		zap.Int("width", g.cfg.Width),
		zap.Int("height", g.cfg.Height),
		zap.Int("classes", g.Registry().Len()),
		zap.Int("workers", g.cfg.Workers),
		zap.String("output", g.paths.Root),
	)

	if err := g.prepare(); err != nil {
		return nil, err
	}

	sum := &Summary{RunID: g.runID, Seed: g.seed, Output: g.paths.Root, Total: g.cfg.Count}
	errs := g.generate(ctx, sum)

	if g.cfg.Archive && ctx.Err() == nil {
		if err := ArchiveDir(g.paths.AggregateDir(), g.paths.Archive()); err != nil {
			g.log.Error("failed to archive labels", zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	errs = multierr.Append(errs, ctx.Err())

	sum.Took = time.Since(start)
	g.log.Info("generation finished",
		zap.Int("written", sum.Written()),
		zap.Int("train", sum.Train),
		zap.Int("val", sum.Val),
		zap.Int("failed", len(sum.Failed)),
		zap.Duration("took", sum.Took),
	)
	return sum, errs
}

func (g *Generator) prepare() error {
	if err := g.paths.Prepare(); err != nil {
		return err
	}
	if err := WriteClasses(g.paths.Classes(), g.Registry()); err != nil {
		return err
	}
	return WriteDataYAML(g.paths, g.Registry())
}

type result struct {
	index int
	err   error
}

func (g *Generator) generate(ctx context.Context, sum *Summary) error {
	jobs := make(chan int)
	results := make(chan result)

	var wg sync.WaitGroup
	for w := 0; w < g.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				results <- result{index: i, err: g.writeOne(i)}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < g.cfg.Count; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var errs error
	for r := range results {
		if r.err != nil {
			g.log.Error("sample failed", zap.Int("index", r.index), zap.Error(r.err))
			sum.Failed = append(sum.Failed, r.index)
			errs = multierr.Append(errs, fmt.Errorf("sample %d: %w", r.index+1, r.err))
			continue
		}
		if g.assign[r.index] == split.Train {
			sum.Train++
		} else {
			sum.Val++
		}
	}
	slices.Sort(sum.Failed)
	return errs
}

func (g *Generator) writeOne(index int) error {
	s, img := g.Sample(index)
	if err := writeSample(g.paths, s, img); err != nil {
		return err
	}
	g.log.Debug("sample written",
		zap.Int("index", index),
		zap.String("name", s.BaseName()),
		zap.String("split", s.Split.String()),
		zap.Int("class", s.ClassID),
		zap.String("fill", s.Fill.Hex()),
	)
	return nil
}

func sampleRNG(seed uint64, index int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(index)))
}

func splitRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, splitStream))
}
