package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"decaf/internal/diag"
	"decaf/internal/lexer"
	"decaf/internal/source"
	"decaf/internal/token"
	"decaf/internal/trace"
)

// SourceExt is the extension TokenizeDir looks for.
const SourceExt = ".decaf"

// FileResult содержит результат токенизации одного файла
type FileResult struct {
	Path    string
	FileID  source.FileID
	Tokens  []token.Token
	Defines map[string]string
	Bag     *diag.Bag
	Cached  bool // tokens came from the TokenCache
	LoadErr error
}

// Result is the outcome of one run over one or more files.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult // same order as the input paths
	Counter *diag.Counter
}

// Errors returns the run's total error count.
func (r *Result) Errors() int {
	return r.Counter.Load()
}

// Tokenize scans a single file.
func Tokenize(ctx context.Context, path string, opts Options) (*Result, error) {
	return TokenizeFiles(ctx, []string{path}, opts)
}

// TokenizeDir scans every *.decaf file under dir, in path order.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*Result, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	res, err := TokenizeFiles(ctx, files, opts)
	if res != nil {
		res.FileSet.SetBaseDir(dir)
	}
	return res, err
}

// TokenizeFiles scans paths in parallel. Files are loaded up front because
// FileSet is not safe for concurrent Add; each worker then owns its lexer.
// A file that cannot be read gets an IO diagnostic instead of tokens. The
// returned error is only for cancellation.
func TokenizeFiles(ctx context.Context, paths []string, opts Options) (*Result, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopePass, "tokenize")
	defer span.End("")

	counter := opts.Counter
	if counter == nil {
		counter = &diag.Counter{}
	}
	fileSet := source.NewFileSet()
	results := make([]FileResult, len(paths))

	for i, path := range paths {
		results[i] = FileResult{Path: path, Bag: diag.NewBag(opts.maxDiagnostics())}
		id, err := fileSet.Load(path)
		if err != nil {
			// placeholder keeps FileIDs aligned with paths for the formatters
			id = fileSet.Add(path, nil, source.FileUnreadable)
			results[i].FileID = id
			results[i].LoadErr = err
			rep := diag.BagReporter{Bag: results[i].Bag, Counter: counter}
			rep.Report(diag.NewError(diag.IOLoadFileError, source.Span{File: id}, nil,
				fmt.Sprintf("failed to load file %s: %v", path, err)))
			trace.Error(trace.FromContext(ctx), "load", err, span.ID())
			continue
		}
		results[i].FileID = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i := range results {
		if results[i].LoadErr != nil {
			continue
		}
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// индекс i уникален для горутины, мьютекс не нужен
			scanOne(gctx, fileSet.Get(results[i].FileID), &results[i], opts, counter)
			return nil
		})
	}

	res := &Result{FileSet: fileSet, Files: results, Counter: counter}
	err := g.Wait()
	span.WithInt("files", len(paths)).WithInt("errors", counter.Load())
	return res, err
}

func scanOne(ctx context.Context, file *source.File, out *FileResult, opts Options, counter *diag.Counter) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeFile, file.Path)
	defer span.End("")

	reporter := diag.BagReporter{Bag: out.Bag, Counter: counter}
	key := CacheKey(file.Hash, opts.maxIdentLen())

	if opts.Cache != nil {
		entry, ok, err := opts.Cache.Get(key)
		switch {
		case err != nil:
			cacheWarning(ctx, reporter, file, err)
		case ok:
			out.Tokens, out.Defines = entry.Restore(file.ID, reporter)
			out.Cached = true
			span.WithInt("tokens", len(out.Tokens)).WithExtra("cached", "true")
			return
		}
	}

	// the cache keeps every diagnostic, not just those that fit in the bag
	var all []diag.Diagnostic
	collect := reporterFunc(func(d diag.Diagnostic) { all = append(all, d) })

	lx := lexer.New(file, lexer.Options{
		Reporter:    diag.MultiReporter{reporter, collect},
		MaxIdentLen: opts.maxIdentLen(),
	})
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			break
		}
	}
	out.Tokens = tokens
	out.Defines = lx.Defines()
	span.WithInt("tokens", len(tokens)).WithInt("diagnostics", len(all))

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, newCacheEntry(tokens, out.Defines, all)); err != nil {
			cacheWarning(ctx, reporter, file, err)
		}
	}
}

func cacheWarning(ctx context.Context, r diag.Reporter, file *source.File, err error) {
	trace.Error(trace.FromContext(ctx), "cache", err, trace.CurrentSpan(ctx))
	r.Report(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: file.ID}, nil,
		"token cache: "+err.Error()))
}

type reporterFunc func(d diag.Diagnostic)

func (f reporterFunc) Report(d diag.Diagnostic) { f(d) }

// ListSourceFiles возвращает отсортированный список всех *.decaf файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
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
