package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shaderlex/internal/diag"
	"shaderlex/internal/diagfmt"
	"shaderlex/internal/driver"
	"shaderlex/internal/source"
	"shaderlex/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.glsl|directory]",
	Short: "Report lexical errors in shader sources",
	Long:  `Check tokenizes shader sources and prints only their diagnostics. It exits with status 1 when any file has errors.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directories (0=auto)")
	checkCmd.Flags().Bool("cache", false, "reuse token streams from the on-disk cache")
	checkCmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	checkCmd.Flags().Bool("with-notes", true, "include diagnostic notes in output")
}

type checkRun struct {
	fileSet *source.FileSet
	paths   []string
	bags    []*diag.Bag
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := targetArg(args)

	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := readFormat(formatFlag, checkFormats)
	if err != nil {
		return err
	}
	pathModeFlag, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	cfg, err := resolveSettings(cmd, target)
	if err != nil {
		return err
	}
	opts, err := cfg.driverOptions()
	if err != nil {
		return err
	}
	opts.SkipTrivia = true
	opts.Timer = newTimer(cmd)

	run, err := collectCheck(cmd, target, opts)
	if err != nil {
		return err
	}

	pathMode := diagfmt.ParsePathMode(pathModeFlag)
	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		color, err := useColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
		opts := diagfmt.PrettyOpts{
			Color:     color,
			Context:   2,
			PathMode:  pathMode,
			ShowNotes: withNotes,
		}
		for _, bag := range run.bags {
			diagfmt.Pretty(out, bag, run.fileSet, opts)
		}
		if !isQuiet(cmd) {
			fmt.Fprintln(cmd.ErrOrStderr(), run.summary())
		}
	case "short":
		if text := diag.FormatShortDiagnostics(run.merged().Items(), run.fileSet, withNotes); text != "" {
			fmt.Fprintln(out, text)
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}
		output := make(map[string]diagfmt.DiagnosticsOutput, len(run.bags))
		for i, bag := range run.bags {
			output[run.paths[i]] = diagfmt.BuildDiagnosticsOutput(bag, run.fileSet, jsonOpts)
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	case "sarif":
		meta := diagfmt.SarifRunMeta{
			ToolName:       "shaderlex",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		}
		if err := diagfmt.Sarif(out, run.merged(), run.fileSet, meta); err != nil {
			return fmt.Errorf("failed to write SARIF: %w", err)
		}
	}

	printTimings(cmd.ErrOrStderr(), opts.Timer)
	if run.hasErrors() {
		return exitStatus(1)
	}
	return nil
}

func collectCheck(cmd *cobra.Command, target string, opts driver.Options) (*checkRun, error) {
	st, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		result, err := driver.Tokenize(target, opts)
		if err != nil {
			return nil, fmt.Errorf("tokenization failed: %w", err)
		}
		return &checkRun{
			fileSet: result.FileSet,
			paths:   []string{result.File.FormatPath("auto", result.FileSet.BaseDir())},
			bags:    []*diag.Bag{result.Bag},
		}, nil
	}

	fs, results, err := driver.TokenizeDir(cmd.Context(), target, opts)
	if err != nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}
	run := &checkRun{fileSet: fs}
	for _, r := range results {
		run.paths = append(run.paths, displayPath(fs, r))
		run.bags = append(run.bags, r.Bag)
	}
	return run, nil
}

func (r *checkRun) hasErrors() bool {
	for _, bag := range r.bags {
		if bag.HasErrors() {
			return true
		}
	}
	return false
}

// merged returns every diagnostic of the run in one bag, in position order.
func (r *checkRun) merged() *diag.Bag {
	all := diag.NewBag(0)
	for _, bag := range r.bags {
		all.Merge(bag)
	}
	all.Sort()
	all.Dedup()
	return all
}

func (r *checkRun) summary() string {
	var errs, warns int
	for _, bag := range r.bags {
		for _, d := range bag.Items() {
			switch {
			case d.Severity >= diag.SevError:
				errs++
			case d.Severity == diag.SevWarning:
				warns++
			}
		}
	}
	files := len(r.bags)
	noun := "files"
	if files == 1 {
		noun = "file"
	}
	if errs == 0 && warns == 0 {
		return fmt.Sprintf("%d %s checked, no problems", files, noun)
	}
	return fmt.Sprintf("%d %s checked, %d errors, %d warnings", files, noun, errs, warns)
}
