package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"decaf/internal/config"
	"decaf/internal/diag"
	"decaf/internal/diagfmt"
	"decaf/internal/driver"
	"decaf/internal/observ"
	"decaf/internal/prof"
	"decaf/internal/trace"
	"decaf/internal/version"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.decaf...",
		Short: "Tokenize Decaf source files",
		Long: `Tokenize scans each file, prints its tokens to stdout and its
diagnostics to stderr. The exit status is 1 when any error was reported.
A directory argument scans every *.decaf file below it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runTokenize,
	}
	f := cmd.Flags()
	f.String("format", "pretty", "token output format (pretty|json|none)")
	f.String("diag-format", "", "diagnostic format (classic|pretty|json|sarif); default from decaf.toml or classic")
	f.Int("max-ident-len", 0, "maximum identifier length; default from decaf.toml or 31")
	f.Int("jobs", 0, "files scanned in parallel (0 = GOMAXPROCS)")
	f.Bool("cache", false, "reuse token streams of unchanged files")
	f.String("config", "", "path to decaf.toml (default: search upward from the first input)")
	f.Bool("timings", false, "print phase timings to stderr")
	return cmd
}

// settings is decaf.toml overlaid with explicit flags.
type settings struct {
	format      string
	diagFormat  string
	maxIdentLen int
	maxDiags    int
	jobs        int
	color       string
	cache       bool
	cacheDir    string
}

func resolveSettings(cmd *cobra.Command, firstInput string) (settings, error) {
	flags := cmd.Flags()
	pf := cmd.Root().PersistentFlags()

	cfgPath, _ := flags.GetString("config")
	var (
		cfg config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		dir := firstInput
		if info, statErr := os.Stat(firstInput); statErr != nil || !info.IsDir() {
			dir = filepath.Dir(firstInput)
		}
		cfg, err = config.Discover(dir)
	}
	if err != nil {
		return settings{}, err
	}

	s := settings{
		diagFormat:  cfg.Diagnostics.Format,
		maxIdentLen: cfg.Lexer.MaxIdentLen,
		maxDiags:    cfg.Diagnostics.Max,
		color:       cfg.Diagnostics.Color,
		cache:       cfg.Cache.Enabled,
		cacheDir:    cfg.Cache.Dir,
	}
	s.format, _ = flags.GetString("format")
	s.jobs, _ = flags.GetInt("jobs")
	if flags.Changed("diag-format") {
		s.diagFormat, _ = flags.GetString("diag-format")
	}
	if flags.Changed("max-ident-len") {
		s.maxIdentLen, _ = flags.GetInt("max-ident-len")
	}
	if flags.Changed("cache") {
		s.cache, _ = flags.GetBool("cache")
	}
	if pf.Changed("max-diagnostics") {
		s.maxDiags, _ = pf.GetInt("max-diagnostics")
	}
	if pf.Changed("color") {
		s.color, _ = pf.GetString("color")
	}

	switch s.format {
	case "pretty", "json", "none":
	default:
		return settings{}, fmt.Errorf("unknown format: %s", s.format)
	}
	switch s.diagFormat {
	case "classic", "pretty", "json", "sarif":
	default:
		return settings{}, fmt.Errorf("unknown diagnostic format: %s", s.diagFormat)
	}
	if s.maxIdentLen <= 0 {
		return settings{}, fmt.Errorf("--max-ident-len must be positive")
	}
	return s, nil
}

func runTokenize(cmd *cobra.Command, args []string) (err error) {
	session, err := startProfiling(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := session.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "tokenize")
	defer span.End("")

	timer := observ.NewTimer()
	if timings, _ := cmd.Flags().GetBool("timings"); timings {
		defer func() {
			fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
		}()
	}

	phase := timer.Begin("config")
	s, err := resolveSettings(cmd, args[0])
	timer.End(phase, "")
	if err != nil {
		trace.Error(trace.FromContext(ctx), "config", err, span.ID())
		return err
	}

	opts := driver.Options{
		MaxIdentLen:    s.maxIdentLen,
		MaxDiagnostics: s.maxDiags,
		Jobs:           s.jobs,
	}
	if s.cache {
		cache, err := driver.OpenTokenCache(s.cacheDir)
		if err != nil {
			return err
		}
		opts.Cache = cache
	}

	phase = timer.Begin("tokenize")
	paths, err := expandInputs(args)
	if err != nil {
		return err
	}
	res, err := driver.TokenizeFiles(ctx, paths, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	timer.End(phase, fmt.Sprintf("%d files", len(res.Files)))

	stdout := bufio.NewWriter(cmd.OutOrStdout())
	defer stdout.Flush()
	stderr := cmd.ErrOrStderr()

	phase = timer.Begin("emit")
	err = emit(stdout, stderr, res, s, paths)
	timer.End(phase, "")
	if err != nil {
		return err
	}

	errs := res.Errors()
	span.WithInt("errors", errs)
	if errs > 0 {
		if err := stdout.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "%d error(s)\n", errs)
		return exitError{code: 1}
	}
	return nil
}

// emit prints tokens and diagnostics. Classic and pretty diagnostics are
// printed per file right after that file's tokens; JSON and SARIF are
// merged into one document after all tokens.
func emit(stdout *bufio.Writer, stderr io.Writer, res *driver.Result, s settings, args []string) error {
	colored := false
	if s.diagFormat == "pretty" {
		c, err := useColor(s.color, os.Stderr)
		if err != nil {
			return err
		}
		colored = c
	}

	// счётчик общий с драйвером не нужен: ошибки уже посчитаны
	classic := diag.NewErrorReporter(stderr, nil).FlushBefore(stdout)
	merged := diag.NewBag(0)

	for _, f := range res.Files {
		if f.Tokens != nil {
			if err := writeTokens(stdout, f, s.format); err != nil {
				return err
			}
		}

		switch s.diagFormat {
		case "classic":
			for _, d := range f.Bag.Items() {
				classic.Report(d)
			}
		case "pretty":
			if f.Bag.Len() == 0 {
				continue
			}
			if err := stdout.Flush(); err != nil {
				return err
			}
			f.Bag.Sort()
			if err := diagfmt.Pretty(stderr, f.Bag, res.FileSet, diagfmt.PrettyOpts{
				Color:     colored,
				Context:   1,
				ShowNotes: true,
			}); err != nil {
				return err
			}
		default:
			merged.Merge(f.Bag)
		}
	}
	if err := stdout.Flush(); err != nil {
		return err
	}

	switch s.diagFormat {
	case "json":
		return diagfmt.JSON(stderr, merged, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
	case "sarif":
		return diagfmt.Sarif(stderr, merged, res.FileSet, diagfmt.SarifRunMeta{
			ToolName:       "decaf",
			ToolVersion:    version.Plain(),
			InvocationArgs: append([]string{"tokenize"}, args...),
		})
	}
	return nil
}

func writeTokens(w io.Writer, f driver.FileResult, format string) error {
	switch format {
	case "pretty":
		if _, err := fmt.Fprintf(w, "== %s\n", f.Path); err != nil {
			return err
		}
		return diagfmt.FormatTokensPretty(w, f.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(w, f.Tokens)
	}
	return nil
}

// expandInputs replaces directory arguments with the *.decaf files below them.
func expandInputs(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		info, err := os.Stat(a)
		if err != nil || !info.IsDir() {
			// missing files are reported by the driver as diagnostics
			out = append(out, a)
			continue
		}
		files, err := driver.ListSourceFiles(a)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", a, err)
		}
		out = append(out, files...)
	}
	return out, nil
}

func startProfiling(cmd *cobra.Command) (*prof.Session, error) {
	pf := cmd.Root().PersistentFlags()
	var opts prof.Options
	opts.CPU, _ = pf.GetString("cpu-profile")
	opts.Mem, _ = pf.GetString("mem-profile")
	opts.Trace, _ = pf.GetString("runtime-trace")
	return prof.Start(opts)
}
