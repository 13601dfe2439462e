package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"embedcode/internal/config"
	"embedcode/internal/crawler"
	"embedcode/internal/embedding"
	"embedcode/internal/fragment"
	"embedcode/internal/logging"
	"embedcode/internal/storage"
)

// Runner executes the embedding modes over a whole project.
type Runner struct {
	cfg       *config.Config
	store     storage.Store
	extractor *fragment.Extractor
	logger    logging.Logger
	runID     string
}

// NewRunner creates a runner storing fragments in cfg.FragmentsDir.
func NewRunner(cfg *config.Config, logger logging.Logger) *Runner {
	return NewRunnerWithStore(cfg, storage.NewFileStore(cfg.FragmentsDir), logger)
}

// NewRunnerWithStore creates a runner backed by an explicit fragment store.
func NewRunnerWithStore(cfg *config.Config, store storage.Store, logger logging.Logger) *Runner {
	runID := uuid.NewString()
	return &Runner{
		cfg:       cfg,
		store:     store,
		extractor: fragment.NewExtractor(cfg.Separator),
		logger:    logging.WithRunID(logger, runID),
		runID:     runID,
	}
}

// RunID identifies this runner in log output.
func (r *Runner) RunID() string {
	return r.runID
}

// WriteFragments extracts the fragments of every code file into the store.
// Files that are not valid text are skipped.
func (r *Runner) WriteFragments(ctx context.Context) error {
	start := time.Now()
	codeFiles, err := r.codeFilesStage(ctx)
	if err != nil {
		return err
	}

	written := 0
	for _, rel := range codeFiles {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(r.cfg.CodeRoot, rel)
		result, err := r.extractor.ExtractFromFile(path)
		if errors.Is(err, fragment.ErrNotText) {
			r.logger.Debug("skipping non-text file", "file", rel)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to fragmentize %s: %w", path, err)
		}
		if err := r.extractor.WriteTo(r.store, filepath.ToSlash(rel), result); err != nil {
			return err
		}
		written++
	}

	r.logger.Info("fragments written", "files", written, "elapsed", time.Since(start).String())
	return nil
}

// Embed refreshes the code fragments in every documentation file and
// returns the files that were rewritten.
func (r *Runner) Embed(ctx context.Context) ([]string, error) {
	if err := r.WriteFragments(ctx); err != nil {
		return nil, err
	}
	docFiles, err := r.docFilesStage(ctx)
	if err != nil {
		return nil, err
	}

	var updated []string
	for _, rel := range docFiles {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		changed, err := r.processor(rel).Embed()
		if err != nil {
			return updated, err
		}
		if changed {
			r.logger.Info("documentation updated", "file", rel)
			updated = append(updated, rel)
		}
	}

	r.logger.Info("embedding finished", "documents", len(docFiles), "updated", len(updated))
	return updated, nil
}

// Check reports the documentation files whose embedded code is stale.
// It returns an *OutOfDateError listing them if there are any.
func (r *Runner) Check(ctx context.Context) ([]string, error) {
	if err := r.WriteFragments(ctx); err != nil {
		return nil, err
	}
	docFiles, err := r.docFilesStage(ctx)
	if err != nil {
		return nil, err
	}

	var stale []string
	for _, rel := range docFiles {
		if err := ctx.Err(); err != nil {
			return stale, err
		}
		upToDate, err := r.processor(rel).IsUpToDate()
		if err != nil {
			return stale, err
		}
		if !upToDate {
			r.logger.Warn("documentation is out of date", "file", rel)
			stale = append(stale, rel)
		}
	}

	if len(stale) > 0 {
		return stale, &OutOfDateError{Files: stale}
	}
	r.logger.Info("documentation is up to date", "documents", len(docFiles))
	return nil, nil
}

// Analyze processes every documentation file without writing it, writes the
// problems found to reportPath and removes the fragment store.
func (r *Runner) Analyze(ctx context.Context, reportPath string) ([]Problem, error) {
	if err := r.WriteFragments(ctx); err != nil {
		return nil, err
	}
	docFiles, err := r.docFilesStage(ctx)
	if err != nil {
		return nil, err
	}

	var problems []Problem
	for _, rel := range docFiles {
		if err := ctx.Err(); err != nil {
			return problems, err
		}
		c, err := r.processor(rel).Process()
		if err == nil {
			continue
		}
		problem := Problem{DocFile: filepath.ToSlash(rel), Err: err}
		if c != nil {
			if d := c.Pending(); d != nil {
				problem.CodeFile = d.CodeFile
				problem.Fragment = d.Fragment
			}
		}
		r.logger.Warn("problem found", "file", rel, "error", err.Error())
		problems = append(problems, problem)
	}

	if err := WriteReport(reportPath, problems); err != nil {
		return problems, err
	}
	if err := r.store.Clean(); err != nil {
		return problems, err
	}

	r.logger.Info("analysis finished", "documents", len(docFiles), "problems", len(problems), "report", reportPath)
	return problems, nil
}

func (r *Runner) processor(rel string) *embedding.Processor {
	return embedding.NewProcessor(filepath.Join(r.cfg.DocumentationRoot, rel), r.store)
}

func (r *Runner) codeFilesStage(ctx context.Context) ([]string, error) {
	c, err := crawler.NewCrawler(r.cfg.CodeRoot, r.cfg.CodeIncludes,
		crawler.WithSkipDir(r.cfg.FragmentsDir))
	if err != nil {
		return nil, fmt.Errorf("invalid code includes: %w", err)
	}
	files, err := c.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan code root %s: %w", r.cfg.CodeRoot, err)
	}
	r.logger.Debug("code files found", "count", len(files))
	return files, nil
}

func (r *Runner) docFilesStage(ctx context.Context) ([]string, error) {
	c, err := crawler.NewCrawler(r.cfg.DocumentationRoot, r.cfg.DocIncludes,
		crawler.WithExcludes(r.cfg.DocExcludes...),
		crawler.WithSkipDir(r.cfg.FragmentsDir))
	if err != nil {
		return nil, fmt.Errorf("invalid documentation patterns: %w", err)
	}
	files, err := c.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan documentation root %s: %w", r.cfg.DocumentationRoot, err)
	}
	r.logger.Debug("documentation files found", "count", len(files))
	return files, nil
}
