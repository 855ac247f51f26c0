package main

import (
	"os"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hhhapz/coursedoc/syllabus"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coursedoc <document.html> <table-index>",
		Short: "Extract course syllabi from a curriculum document",
		Long: `coursedoc reads an HTML curriculum document and prints one record per
course as a JSON array.

Scanning starts at the table with the given zero based index and covers
everything after it in the document body. Course metadata is read from
tables; objectives, outcomes, content and book lists are read from the text
that follows them.

Example:
  coursedoc cse.html 3 --branch cse
  coursedoc ece.html 0 --variant extended --format yaml`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         run,
	}

	flags := cmd.Flags()
	flags.String("config", "coursedoc.yaml", "config file")
	flags.String("variant", "", "document variant: generic or extended")
	flags.String("branch", "", "branch tag stamped on every course")
	flags.String("format", "", "output format: json or yaml")
	flags.Int("indent", 2, "output indentation")
	flags.Bool("html", false, "render section text to HTML")
	flags.Bool("tokens", false, "dump the token stream to stderr")
	flags.BoolP("verbose", "v", false, "log debug diagnostics")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	started := time.Now()

	table, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrapf(err, "invalid table index %q", args[1])
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := newLogger(cmd.ErrOrStderr(), verbose)

	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "could not open document")
	}
	defer f.Close()

	var size int64
	if stat, err := f.Stat(); err == nil {
		size = stat.Size()
	}

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return errors.Wrap(err, "could not parse document")
	}

	region, err := syllabus.Region(doc, table)
	if err != nil {
		return errors.Wrap(err, "could not find course region")
	}

	opts := syllabus.Options{
		Variant: cfg.variant(),
		Branch:  cfg.Branch,
		Logger:  &log,
	}

	tokens := syllabus.Tokenize(region, opts)
	log.Debug().Int("tokens", len(tokens)).Int("nodes", region.Length()).Msg("tokenized region")
	if dump, _ := cmd.Flags().GetBool("tokens"); dump {
		dumpTokens(cmd.ErrOrStderr(), tokens)
	}

	courses := syllabus.Assemble(tokens, opts)
	if err := writeCourses(cmd.OutOrStdout(), courses, cfg); err != nil {
		return err
	}

	summary(log, courses, len(tokens), size, started)
	return nil
}

// loadConfig layers flags over the config file and environment.
func loadConfig(cmd *cobra.Command) (configuration, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config(path, flags.Changed("config"))
	if err != nil {
		return configuration{}, err
	}

	if flags.Changed("variant") {
		cfg.Variant, _ = flags.GetString("variant")
	}
	if flags.Changed("branch") {
		cfg.Branch, _ = flags.GetString("branch")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("indent") {
		cfg.Indent, _ = flags.GetInt("indent")
	}
	if flags.Changed("html") {
		cfg.HTML, _ = flags.GetBool("html")
	}

	if err := cfg.Validate(); err != nil {
		return configuration{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
