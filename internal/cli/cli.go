package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"unabbreviator/internal/config"
	"unabbreviator/internal/dict"
	"unabbreviator/internal/frontmost"
	"unabbreviator/internal/resolve"
	"unabbreviator/internal/scan"
	"unabbreviator/internal/session"
	"unabbreviator/internal/term"
	"unabbreviator/internal/wordlist"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "unabbreviator [file] [output]",
		Short: "Expand personal shorthand in text and markdown notes",
		Long: `Expand abbreviations in a text or markdown document.

If FILE is provided, process that file. Optionally specify OUTPUT to write
to a different file, preserving the original. With --gui, process the
frontmost document in a supported macOS application.

Examples:
  unabbreviator notes.txt
  unabbreviator notes.txt notes_expanded.txt
  unabbreviator --gui
  unabbreviator -a ~/my-abbreviations.yml document.md`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gui, _ := cmd.Flags().GetBool("gui")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			matchCase, _ := cmd.Flags().GetBool("match-case")
			abbrevPath, _ := cmd.Flags().GetString("abbreviations")

			var file, output string
			if len(args) > 0 {
				file = args[0]
			}
			if len(args) > 1 {
				output = args[1]
			}
			return runExpand(file, output, abbrevPath, gui, dryRun, matchCase)
		},
	}

	rootCmd.PersistentFlags().StringP("abbreviations", "a", "",
		"Path to abbreviations YAML file (default: abbreviations.yml in the executable directory)")
	rootCmd.Flags().Bool("gui", false, "Use frontmost document (macOS only)")
	rootCmd.Flags().BoolP("dry-run", "n", false, "Show changes without modifying the file")
	rootCmd.Flags().Bool("match-case", false, "Carry each word's case pattern onto its expansion")

	rootCmd.AddCommand(scanCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <directory>",
		Short: "Audit note files for unknown words without prompting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			abbrevPath, _ := cmd.Flags().GetString("abbreviations")
			return runScan(args[0], abbrevPath)
		},
	}
}

// runExpand handles the root command: one interactive pass over a document.
func runExpand(file, output, abbrevOverride string, gui, dryRun, matchCase bool) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	if abbrevOverride != "" {
		cfg.AbbreviationsPath = abbrevOverride
	}

	// 1. Determine the document to process. GUI mode replaces both paths
	// with the frontmost document.
	inputPath, outputPath := file, output
	if gui {
		if runtime.GOOS != "darwin" {
			return fmt.Errorf("--gui option is only available on macOS")
		}
		path, err := frontmost.Document(ctx)
		if err != nil {
			return fmt.Errorf("get frontmost document: %w", err)
		}
		inputPath, outputPath = path, path
	}
	if inputPath == "" {
		return fmt.Errorf("provide a FILE or use --gui")
	}
	if outputPath == "" {
		outputPath = inputPath
	}

	if _, err := os.Stat(cfg.AbbreviationsPath); err != nil {
		return fmt.Errorf("%w: abbreviations file not found: %s", dict.ErrLoad, cfg.AbbreviationsPath)
	}

	fmt.Println(term.Info("Processing: " + inputPath))
	fmt.Println(term.Info("Using abbreviations: " + cfg.AbbreviationsPath))
	fmt.Println()

	// 2. Load the dictionary and the system word list.
	store, err := dict.Load(cfg.AbbreviationsPath, cfg.IgnorePath())
	if err != nil {
		return err
	}

	words, err := wordlist.Load(cfg.WordlistPaths...)
	if err != nil {
		return err
	}

	abbrevs, ignored := store.Counts()
	fmt.Printf("Loaded %d abbreviations, %d ignored words, %d dictionary words\n",
		abbrevs, ignored, words.Size())

	// 3. Run the interactive pass.
	resolver := resolve.New(os.Stdin, os.Stdout, store, resolve.Options{
		ShortLine:     cfg.ShortLine,
		ProgressWidth: cfg.ProgressWidth,
	})
	controller := session.New(store, words.Contains, resolver, os.Stdout, session.Options{
		DryRun:    dryRun,
		MatchCase: matchCase,
	})

	result, err := controller.Run(ctx, inputPath, outputPath)
	if err != nil {
		return err
	}

	log.Info().
		Int("prompts", result.PromptsShown).
		Int("expanded", result.Expanded).
		Bool("stopped", result.Stopped).
		Bool("aborted", result.Aborted).
		Msg("Session finished")

	return nil
}

// runScan handles the `scan` command.
func runScan(dir, abbrevOverride string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	if abbrevOverride != "" {
		cfg.AbbreviationsPath = abbrevOverride
	}

	if _, err := os.Stat(cfg.AbbreviationsPath); err != nil {
		return fmt.Errorf("%w: abbreviations file not found: %s", dict.ErrLoad, cfg.AbbreviationsPath)
	}

	store, err := dict.Load(cfg.AbbreviationsPath, cfg.IgnorePath())
	if err != nil {
		return err
	}

	words, err := wordlist.Load(cfg.WordlistPaths...)
	if err != nil {
		return err
	}

	report, err := scan.New(store, words.Contains, cfg.WorkerCount).Run(ctx, dir)
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

func printReport(report scan.Report) {
	for _, f := range report.Files {
		fmt.Printf("%s: %d words, %d known, %d unknown, %d ignored\n",
			f.Path, f.Words, f.Known, f.Unknown, f.Ignored)
	}

	fmt.Println()
	fmt.Println(term.Info(fmt.Sprintf("Scanned %d files: %d words, %d known abbreviations, %d unknown words",
		len(report.Files), report.TotalWords, report.TotalKnown, report.TotalUnknown)))

	if len(report.TopUnknown) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(term.Info("Most frequent unknown words:"))
	for _, wc := range report.TopUnknown {
		fmt.Printf("  %4d  %s\n", wc.Count, wc.Word)
	}
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}
