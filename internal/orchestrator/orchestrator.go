// Package orchestrator runs the translation services. The usual path is an
// ordered fallback chain (grammar engine first, remote services after);
// ExecuteAll fans out to every service concurrently for comparison.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akanlabs/nkyerease/internal/translator"
)

type Config struct {
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
}

type Result struct {
	Results   []translator.ServiceResult
	Errors    []error
	Succeeded int
	Failed    int
}

type Orchestrator struct {
	services []translator.TranslationService
	config   Config
}

func New(services []translator.TranslationService, config Config) *Orchestrator {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	return &Orchestrator{
		services: services,
		config:   config,
	}
}

// ExecuteWithFallback tries each service in order and returns the first
// success. Remote services get MaxAttempts tries each; the grammar engine's
// failures are deterministic, so it is never retried. When every service
// fails, the joined errors are returned.
func (o *Orchestrator) ExecuteWithFallback(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	var errs []error

	for _, svc := range o.services {
		attempts := o.config.MaxAttempts
		if svc.Name() == "grammar" {
			attempts = 1
		}

		for attempt := 1; attempt <= attempts; attempt++ {
			res, err := o.translateOnce(ctx, svc, cfg, req)
			if err == nil {
				return res, nil
			}
			errs = append(errs, fmt.Errorf("%s (attempt %d): %w", svc.Name(), attempt, err))

			if attempt < attempts && o.config.RetryDelay > 0 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(o.config.RetryDelay):
				}
			}
		}
	}

	if len(errs) == 0 {
		return nil, fmt.Errorf("no services configured")
	}
	return nil, errors.Join(errs...)
}

// ExecuteAll runs every service concurrently and collects all outcomes.
func (o *Orchestrator) ExecuteAll(ctx context.Context, cfg translator.ServiceConfig, req translator.TranslateRequest) *Result {
	result := &Result{
		Results: make([]translator.ServiceResult, 0, len(o.services)),
		Errors:  make([]error, 0),
	}

	type outcome struct {
		res *translator.ServiceResult
		err error
	}
	outcomes := make(chan outcome, len(o.services))

	var wg sync.WaitGroup
	for _, svc := range o.services {
		wg.Add(1)
		go func(service translator.TranslationService) {
			defer wg.Done()
			res, err := o.translateOnce(ctx, service, cfg, req)
			outcomes <- outcome{res: res, err: err}
		}(svc)
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	for oc := range outcomes {
		if oc.err != nil {
			result.Errors = append(result.Errors, oc.err)
			result.Failed++
			continue
		}
		result.Results = append(result.Results, *oc.res)
		result.Succeeded++
	}

	return result
}

func (o *Orchestrator) translateOnce(ctx context.Context, svc translator.TranslationService, cfg translator.ServiceConfig, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	if o.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.Timeout)
		defer cancel()
	}

	res, err := svc.Translate(ctx, cfg, req)
	if err != nil {
		return nil, err
	}
	if res.Error != "" {
		return nil, fmt.Errorf("%s: %s", svc.Name(), res.Error)
	}
	return res, nil
}
