package driver

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"shaderlex/internal/diag"
	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

// TokenizeDirResult is the outcome for one file of TokenizeDir.
type TokenizeDirResult struct {
	Path   string        // path as walked, rooted at dir
	FileID source.FileID // ID in the shared FileSet
	Tokens []token.Token // nil when the file could not be loaded
	Bag    *diag.Bag
	Cached bool
}

// ListShaderFiles returns the sorted paths under dir that match opts.
func ListShaderFiles(dir string, opts Options) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && opts.Matches(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every matching file under dir in parallel. Results
// are in path order. A file that fails to load gets an IOLoadFileError
// diagnostic instead of tokens; only cancellation aborts the run.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListShaderFiles(dir, opts)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// every goroutine owns results[i]
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			started := time.Now()
			results[i] = tokenizeOne(fileSet, path, opts)
			status := StatusDone
			if results[i].Bag.HasErrors() {
				status = StatusError
			}
			emit(opts.Progress, Event{File: path, Stage: StageLex, Status: status, Elapsed: time.Since(started)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func tokenizeOne(fileSet *source.FileSet, path string, opts Options) TokenizeDirResult {
	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})

	stop := opts.Timer.Track("load")
	fileID, err := fileSet.Load(path)
	stop()
	if err != nil {
		// keep the path resolvable for the diagnostic
		fileID = fileSet.Add(path, nil, source.FileVirtual)
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: fileID}, loadMessage(err)))
		return TokenizeDirResult{Path: path, FileID: fileID, Bag: bag}
	}

	emit(opts.Progress, Event{File: path, Stage: StageLex, Status: StatusWorking})
	res := TokenizeFile(fileSet, fileSet.Get(fileID), opts)
	return TokenizeDirResult{
		Path:   path,
		FileID: fileID,
		Tokens: res.Tokens,
		Bag:    res.Bag,
		Cached: res.Cached,
	}
}

func loadMessage(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return "Could not load file: " + pe.Err.Error()
	}
	return "Could not load file: " + err.Error()
}
