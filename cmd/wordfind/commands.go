package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/wordfind/internal/cli"
	"github.com/bastiangx/wordfind/internal/logger"
	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/corpus"
	"github.com/bastiangx/wordfind/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Environment overrides, flags win over both.
const (
	envConfig = "WORDFIND_CONFIG"
	envCorpus = "WORDFIND_CORPUS"
)

// sessionPaths records where the config and corpus were found.
type sessionPaths struct {
	configDir  string
	configFile string
	corpusFile string
}

type globalOptions struct {
	corpus     string
	configPath string
	debug      bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: "Find words and suggest completions from a text corpus",
		Long: `wordfind builds a character trie over every word of a text file.

Type a word to learn how often the text uses it. Type part of one to get the
most used words starting with the longest prefix the text knows.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := openSession(opts)
			if err != nil {
				return err
			}
			return runLoop(session, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.corpus, "corpus", "f", "", "Corpus text file")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Toggle debug mode")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(benchCmd(opts))
	rootCmd.AddCommand(serveCmd(opts))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func benchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bench <word> [times]",
		Short: "Time a query repeated many times",
		Long: `Run the same query repeatedly and print its result with the average
time per query. A missing or invalid repeat count falls back to
bench.default_repeats.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, err := openSession(opts)
			if err != nil {
				return err
			}

			var arg string
			if len(args) == 2 {
				arg = args[1]
			}
			repeats := cli.ParseRepeats(arg, session.Config.Bench.DefaultRepeats)

			out := cmd.OutOrStdout()
			render := cli.NewRenderer(out, session.Config.CLI.Color)
			fmt.Fprintln(out, render.Bench(cli.Benchmark(session.Index, args[0], repeats)))
			return nil
		},
	}
}

func serveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer msgpack queries on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, paths, err := openSession(opts)
			if err != nil {
				return err
			}
			showStartupInfo(cmd.ErrOrStderr(), session, paths)

			srv := server.NewSessionServer(session, cmd.InOrStdin(), cmd.OutOrStdout())
			if err := srv.Start(); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

// openSession resolves config and corpus paths, then ingests the corpus.
// Flags win over WORDFIND_CONFIG / WORDFIND_CORPUS, which win over the config.
func openSession(opts *globalOptions) (*corpus.Session, sessionPaths, error) {
	logger.Setup(opts.debug)

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		return nil, sessionPaths{}, fmt.Errorf("failed to initialize path resolver: %w", err)
	}

	customConfig := firstNonEmpty(opts.configPath, os.Getenv(envConfig))
	cfg, usedPath, err := config.LoadConfigWithPriority(customConfig, pathResolver.GetConfigPath(config.FileName))
	if err != nil {
		return nil, sessionPaths{}, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.noColor {
		cfg.CLI.Color = false
	}

	paths := sessionPaths{
		configDir:  pathResolver.ConfigDir(),
		configFile: utils.GetAbsolutePath(usedPath),
		corpusFile: utils.GetAbsolutePath(pathResolver.ResolveCorpusPath(
			firstNonEmpty(opts.corpus, os.Getenv(envCorpus), cfg.Corpus.Path))),
	}
	log.Debugf("Using config file: (%s)", paths.configFile)
	log.Debugf("Using corpus at: %s", paths.corpusFile)

	session, err := corpus.Open(cfg, paths.corpusFile)
	if err != nil {
		return nil, paths, err
	}
	return session, paths, nil
}

// runLoop prints the ingestion summary and hands over to the query loop.
func runLoop(session *corpus.Session, in io.Reader, out io.Writer) error {
	render := cli.NewRenderer(out, session.Config.CLI.Color)
	fmt.Fprintln(out, render.Stats(session.Stats))

	inputHandler := cli.NewInputHandler(session.Index, in, out, cli.Options{
		ExitWord:   session.Config.CLI.ExitWord,
		Color:      session.Config.CLI.Color,
		ShowTiming: session.Config.CLI.ShowTiming,
	})
	if err := inputHandler.Start(); err != nil {
		return fmt.Errorf("query loop: %w", err)
	}
	log.Debugf("Answered %d queries", inputHandler.Requests())
	return nil
}

func printVersion(w io.Writer) {
	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordfind ] Finds words and suggests completions")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the loaded session.
// w is stderr in practice, stdout belongs to the msgpack stream.
func showStartupInfo(w io.Writer, session *corpus.Session, paths sessionPaths) {
	info := logger.NewWithWriter(w, "")
	info.SetLevel(log.InfoLevel)

	info.Infof("Version: %s", Version)
	info.Infof("Process ID: [ %d ]", os.Getpid())
	info.Infof("config dir: ( %s )", paths.configDir)
	info.Infof("config file: ( %s )", paths.configFile)
	info.Infof("corpus: ( %s )", paths.corpusFile)
	info.Infof("words: %s, nodes: %s",
		utils.FormatWithCommas(uint(session.Index.Words())),
		utils.FormatWithCommas(uint(session.Index.Nodes())))
	info.Info("status: ready")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
