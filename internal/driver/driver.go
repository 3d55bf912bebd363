// Package driver orchestrates check runs: it loads files into a
// session, executes the registered analyses and fans the work out
// across a worker pool for directory-wide runs.
package driver

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"helios/internal/diag"
	"helios/internal/project"
	"helios/internal/session"
	"helios/internal/source"
)

// SourceExt is the file extension a directory scan picks up.
const SourceExt = ".sol"

// Options configures a check run.
type Options struct {
	// MaxDiagnostics bounds each file's diagnostic bag; 0 means the
	// session default.
	MaxDiagnostics int
	// Jobs bounds the worker pool for directory runs; 0 means
	// GOMAXPROCS.
	Jobs int
	// Analyses to execute per file; nil means DefaultAnalyses.
	Analyses []Analysis
	// Progress receives per-file events when non-nil.
	Progress ProgressSink
	// Cache, when non-nil, is consulted by content hash before running
	// analyses and updated afterwards.
	Cache *DiskCache
	// Manifest, when non-nil, contributes source exclusions.
	Manifest *project.Manifest
}

func (o Options) analyses() []Analysis {
	if o.Analyses == nil {
		return DefaultAnalyses()
	}
	return o.Analyses
}

// FileResult is the outcome of checking one file.
type FileResult struct {
	Path string
	// File is nil when the file could not be loaded.
	File *source.File
	// Sess owns the file's diagnostics and position space.
	Sess *session.Session
	// Cached reports that the diagnostics were replayed from the disk
	// cache instead of recomputed.
	Cached bool
}

// HasErrors reports whether the file produced error diagnostics.
func (r FileResult) HasErrors() bool {
	return r.Sess != nil && r.Sess.Diags.HasErrors()
}

// CheckFile checks a single file in a fresh session and returns the
// result. Load failures surface as diagnostics, not as a Go error;
// the error return covers fatal aborts only.
func CheckFile(path string, opts Options) (FileResult, error) {
	res, s, err := session.WithSession(opts.MaxDiagnostics, func(s *session.Session) FileResult {
		return checkOne(s, path, opts)
	})
	if err != nil {
		// Fatal abort: the diagnostic is already in the session bag.
		return FileResult{Path: path, Sess: s}, err
	}
	return res, nil
}

// checkOne loads path into s and runs the analyses; progress and cache
// handling included. The session must be empty of other files only for
// cache replay to be byte-stable, not for correctness.
func checkOne(s *session.Session, path string, opts Options) FileResult {
	start := time.Now()
	emit(opts.Progress, path, StageLoad, StatusWorking, nil, 0)

	res := FileResult{Path: path, Sess: s}
	f, err := s.Sources.LoadFile(path)
	if err != nil {
		emit(opts.Progress, path, StageLoad, StatusError, err, time.Since(start))
		reportLoadFailure(s, err)
		return res
	}
	res.File = f

	if opts.Cache != nil {
		var payload DiskPayload
		if hit, err := opts.Cache.Get(project.Digest(f.Hash), &payload); err == nil && hit {
			replayDiskPayload(&payload, f, s.Diags)
			s.Diags.Sort()
			res.Cached = true
			emit(opts.Progress, path, StageAnalyze, doneStatus(s.Diags), nil, time.Since(start))
			return res
		}
	}

	emit(opts.Progress, path, StageAnalyze, StatusWorking, nil, 0)
	for _, analysis := range opts.analyses() {
		analysis(s, f)
	}
	s.Diags.Sort()

	if opts.Cache != nil {
		// Best effort: a failed cache write never fails the check.
		_ = opts.Cache.Put(project.Digest(f.Hash), bagToDiskPayload(path, f, s.Diags))
	}

	emit(opts.Progress, path, StageAnalyze, doneStatus(s.Diags), nil, time.Since(start))
	return res
}

// reportLoadFailure records a load error as a diagnostic. Position
// space exhaustion aborts the whole run instead: once the space is
// full no file can be positioned, so the fatal unwinds to the session
// boundary rather than letting the run continue.
func reportLoadFailure(s *session.Session, err error) {
	if errors.Is(err, source.ErrPosSpaceExhausted) {
		diag.FatalCode(diag.IOSpaceExhaust, "failed to load file: "+err.Error())
	}
	code := diag.IOUnreadable
	if errors.Is(err, source.ErrBadEncoding) {
		code = diag.IOBadEncoding
	}
	s.Diags.Emit(diag.NewError(code, source.DummySpan, "failed to load file: "+err.Error()))
}

func doneStatus(bag *diag.Bag) Status {
	if bag.HasErrors() {
		return StatusError
	}
	return StatusDone
}

// ListSourceFiles returns the sorted list of source files under dir,
// honoring the manifest's exclusions when one is supplied.
func ListSourceFiles(dir string, manifest *project.Manifest) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, SourceExt) {
			return nil
		}
		if manifest != nil && manifest.Excluded(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Deterministic ordering regardless of filesystem iteration order.
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every source file under dir in parallel. Each file
// gets its own independent session so workers never share interners or
// position spaces. Results come back in the deterministic file order.
func CheckDir(ctx context.Context, dir string, opts Options) ([]FileResult, error) {
	files, err := ListSourceFiles(dir, opts.Manifest)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	for _, path := range files {
		emit(opts.Progress, path, StageLoad, StatusQueued, nil, 0)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indexes are unique per goroutine, no mutex needed.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, s, err := session.WithSession(opts.MaxDiagnostics, func(s *session.Session) FileResult {
				return checkOne(s, path, opts)
			})
			if err != nil {
				// Fatal abort: the diagnostic is already in the bag.
				res = FileResult{Path: path, Sess: s}
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ExitCode folds per-file results into a process exit status.
func ExitCode(results []FileResult) int {
	for _, r := range results {
		if r.HasErrors() {
			return 1
		}
	}
	return 0
}
