package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"controlling_microwave/internal/conformance"
	"controlling_microwave/internal/logger"
	"controlling_microwave/internal/metrics"
	"controlling_microwave/internal/models"
	"controlling_microwave/internal/repository"

	"github.com/google/uuid"
)

const maxExploreDepth = 6

type ConformanceService struct {
	runRepo repository.RunRepo
	depth   int
	suite   conformance.Suite
	lookup  func(string) (conformance.Factory, error)
	log     *logger.Logger
}

// NewConformanceService runs the default suite and, when exploreDepth > 0,
// an exhaustive exploration to that depth (capped at maxExploreDepth).
func NewConformanceService(runRepo repository.RunRepo, exploreDepth int, log *logger.Logger) *ConformanceService {
	if log == nil {
		log = logger.Nop()
	}
	if exploreDepth > maxExploreDepth {
		exploreDepth = maxExploreDepth
	}
	return &ConformanceService{
		runRepo: runRepo,
		depth:   exploreDepth,
		suite:   conformance.Default(),
		lookup:  conformance.Lookup,
		log:     log,
	}
}

func (s *ConformanceService) Implementations() []string {
	return conformance.Implementations()
}

// RunConformance checks a fresh instance of the named implementation and
// stores the outcome. A failing implementation is a result, not an error.
func (s *ConformanceService) RunConformance(ctx context.Context, implementation string) (models.ConformanceRun, error) {
	name := strings.ToLower(strings.TrimSpace(implementation))
	factory, err := s.lookup(name)
	if err != nil {
		return models.ConformanceRun{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.ConformanceRun{}, err
	}

	start := time.Now()
	run := models.ConformanceRun{
		RunID:          uuid.NewString(),
		Implementation: name,
		Suite:          s.suite.Name,
		StartedAt:      start.UTC(),
	}

	rep, runErr := conformance.Run(factory(), s.suite, conformance.WithLogger(s.log))
	run.Steps, run.Assertions = rep.Steps, rep.Assertions
	if runErr == nil && s.depth > 0 {
		var exp conformance.ExploreReport
		exp, runErr = conformance.Explore(factory, conformance.ExploreConfig{Depth: s.depth}, conformance.WithLogger(s.log))
		run.Explored = exp.Sequences
	}

	elapsed := time.Since(start)
	run.DurationMs = elapsed.Milliseconds()
	run.Result = resultOf(runErr)
	if runErr != nil {
		run.Failure = runErr.Error()
	}
	metrics.RecordConformanceRun(name, run.Result, elapsed.Seconds())

	if run.Passed() {
		s.log.Infow("conformance_run", "implementation", name, "result", run.Result, "steps", run.Steps, "explored", run.Explored)
	} else {
		s.log.Warnw("conformance_run", "implementation", name, "result", run.Result, "failure", run.Failure)
	}

	if err := s.runRepo.Append(ctx, run); err != nil {
		return run, fmt.Errorf("store conformance run: %w", err)
	}
	return run, nil
}

func (s *ConformanceService) ListRuns(ctx context.Context, implementation string, limit int) ([]models.ConformanceRun, error) {
	return s.runRepo.List(ctx, strings.ToLower(strings.TrimSpace(implementation)), limit)
}

func resultOf(err error) string {
	var inv *conformance.InvariantError
	var mis *conformance.MismatchError
	switch {
	case err == nil:
		return models.RunPassed
	case errors.As(err, &inv):
		return models.RunInvariantViolated
	case errors.As(err, &mis):
		return models.RunMismatch
	default:
		return models.RunError
	}
}
