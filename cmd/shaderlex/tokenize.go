package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shaderlex/internal/diag"
	"shaderlex/internal/diagfmt"
	"shaderlex/internal/driver"
	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.glsl|directory]",
	Short: "Tokenize a shader source file or directory",
	Long:  `Tokenize breaks GLSL sources down into tokens. Lexical errors go to stderr.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	addTokenizeFlags(tokenizeCmd)
}

func addTokenizeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("format", defaultFormat, "output format (pretty|json|msgpack|source)")
	flags.Bool("skip-trivia", false, "drop whitespace, comments and error tokens")
	flags.Int("jobs", 0, "max parallel workers for directories (0=auto)")
	flags.String("ui", "auto", "progress UI for directories (auto|on|off)")
	flags.Bool("cache", false, "reuse token streams from the on-disk cache")
	flags.Bool("watch", false, "re-tokenize whenever a source changes")
}

func targetArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := targetArg(args)

	cfg, err := resolveSettings(cmd, target)
	if err != nil {
		return err
	}
	format, err := readFormat(cfg.format, tokenFormats)
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("failed to get watch flag: %w", err)
	}
	opts, err := cfg.driverOptions()
	if err != nil {
		return err
	}
	opts.Timer = newTimer(cmd)
	colorErr, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	if cfg.manifest != "" {
		log.Debugf("using %s", cfg.manifest)
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	run := func() (bool, error) {
		if !st.IsDir() {
			return tokenizeFileCmd(cmd, target, format, opts, colorErr)
		}
		return tokenizeDirCmd(cmd, target, format, opts, mode, colorErr)
	}

	if watch {
		opts.Memory = driver.NewMemCache(64)
		return watchAndRun(cmd.Context(), target, opts, st.IsDir(), cmd.ErrOrStderr(), func() error {
			_, err := run()
			return err
		})
	}

	failed, err := run()
	printTimings(cmd.ErrOrStderr(), opts.Timer)
	if err != nil {
		return err
	}
	if failed {
		return exitStatus(1)
	}
	return nil
}

func tokenizeFileCmd(cmd *cobra.Command, path, format string, opts driver.Options, colorErr bool) (bool, error) {
	result, err := driver.Tokenize(path, opts)
	if err != nil {
		return false, fmt.Errorf("tokenization failed: %w", err)
	}
	printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, colorErr)

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens, result.FileSet)
	case "msgpack":
		err = diagfmt.FormatTokensMsgpack(out, result.Tokens)
	case "source":
		err = diagfmt.FormatTokensSource(out, result.Tokens, result.FileSet)
	default:
		err = fmt.Errorf("unknown format: %s", format)
	}
	return result.Bag.HasErrors(), err
}

type fileTokensJSON struct {
	Path   string                `json:"path"`
	Tokens []diagfmt.TokenOutput `json:"tokens"`
}

func tokenizeDirCmd(cmd *cobra.Command, dir, format string, opts driver.Options, mode uiMode, colorErr bool) (bool, error) {
	if format == "msgpack" || format == "source" {
		return false, fmt.Errorf("format %s needs a single file", format)
	}
	fs, results, err := tokenizeDir(cmd, dir, opts, mode)
	if err != nil {
		return false, err
	}

	failed := false
	errOut := cmd.ErrOrStderr()
	for _, r := range results {
		if r.Bag.HasErrors() {
			failed = true
		}
		printDiagnostics(errOut, r.Bag, fs, colorErr)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		for idx, r := range results {
			if idx > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s ==\n", displayPath(fs, r))
			if err := diagfmt.FormatTokensPretty(out, r.Tokens, fs); err != nil {
				return failed, err
			}
		}
	case "json":
		payload := make([]fileTokensJSON, 0, len(results))
		for _, r := range results {
			tokens := diagfmt.BuildTokensOutput(r.Tokens, fs)
			if tokens == nil {
				tokens = []diagfmt.TokenOutput{}
			}
			payload = append(payload, fileTokensJSON{Path: displayPath(fs, r), Tokens: tokens})
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(payload); err != nil {
			return failed, fmt.Errorf("failed to encode tokens: %w", err)
		}
	}

	if !isQuiet(cmd) {
		printSummary(errOut, results)
	}
	return failed, nil
}

// tokenizeDir runs TokenizeDir, behind the progress UI when it is enabled.
func tokenizeDir(cmd *cobra.Command, dir string, opts driver.Options, mode uiMode) (*source.FileSet, []driver.TokenizeDirResult, error) {
	if shouldUseTUI(mode, isQuiet(cmd)) {
		files, err := driver.ListShaderFiles(dir, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list shaders: %w", err)
		}
		fs, results, err := runTokenizeDirWithUI(cmd.Context(), "Tokenizing "+dir, dir, files, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("tokenization failed: %w", err)
		}
		return fs, results, nil
	}
	fs, results, err := driver.TokenizeDir(cmd.Context(), dir, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("tokenization failed: %w", err)
	}
	return fs, results, nil
}

func displayPath(fs *source.FileSet, r driver.TokenizeDirResult) string {
	if file := fs.Get(r.FileID); file != nil {
		return file.FormatPath("auto", fs.BaseDir())
	}
	return r.Path
}

func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, color bool) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     color,
		Context:   1,
		ShowNotes: true,
	})
}

func printSummary(w io.Writer, results []driver.TokenizeDirResult) {
	var tokens, errs, cached int
	for _, r := range results {
		tokens += countTokens(r.Tokens)
		if r.Bag.HasErrors() {
			errs++
		}
		if r.Cached {
			cached++
		}
	}
	fmt.Fprintf(w, "%d files, %d tokens", len(results), tokens)
	if cached > 0 {
		fmt.Fprintf(w, ", %d from cache", cached)
	}
	if errs > 0 {
		fmt.Fprintf(w, ", %d with errors", errs)
	}
	fmt.Fprintln(w)
}

// countTokens counts the tokens before EOF.
func countTokens(tokens []token.Token) int {
	n := len(tokens)
	if n > 0 && tokens[n-1].Kind == token.EOF {
		n--
	}
	return n
}
