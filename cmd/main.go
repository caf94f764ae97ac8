package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"clipmark/api"
	"clipmark/archive"
	"clipmark/clip"
	"clipmark/config"
	"clipmark/convert"
	"clipmark/snapshot"
)

var version = "dev"

var (
	sourceName    string
	outputFile    string
	noClipboard   bool
	archivePath   string
	charThreshold int
	timeout       time.Duration
	proxyURL      string
	siteRulesPath string
	verbose       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "clipmark [URL]",
		Short:   "Convert a web page to Markdown and place it on the clipboard",
		Version: version,
		Long: `clipmark captures a web page, isolates its readable content, converts
it to Markdown, and places the result on the system clipboard prefixed
with a title/URL header. Hosts whose content lives in independent DOM
subtrees (claude.ai conversations) are extracted fragment by fragment.`,
		Example: `  # Convert an article and copy it to the clipboard
  clipmark https://example.com/post

  # Capture through headless Chrome and write to a file
  clipmark --source browser -o chat.md https://claude.ai/chat/abc123

  # Run the local conversion service
  clipmark serve`,
		Args:         cobra.ExactArgs(1),
		RunE:         runConvert,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&sourceName, "source", "s", "auto", "Snapshot source (auto, fetch, browser)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the document to a file instead of the clipboard")
	rootCmd.Flags().BoolVar(&noClipboard, "no-clipboard", false, "Print the document to stdout instead of the clipboard")
	rootCmd.Flags().StringVar(&archivePath, "archive", "", "BoltDB file to record the conversion in (empty disables)")
	rootCmd.Flags().IntVar(&charThreshold, "char-threshold", convert.DefaultCharThreshold, "Minimum characters for a block to count as main content")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 60*time.Second, "Capture timeout")
	rootCmd.Flags().StringVarP(&proxyURL, "proxy", "p", os.Getenv("PROXY_URL"), "Proxy URL for page capture")
	rootCmd.Flags().StringVar(&siteRulesPath, "site-rules", "", "YAML file with extra fragment-extraction site rules")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local conversion HTTP service",
		RunE:  runServe,
	}
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	target := normalizeURL(args[0])

	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	rules, err := config.LoadSiteRules(siteRulesPath)
	if err != nil {
		return err
	}
	converter := convert.New(logger, convert.Options{
		CharThreshold: charThreshold,
		Rules:         rules,
	})

	source, err := pickSource(converter, logger, target)
	if err != nil {
		return err
	}

	page, err := source.Capture(context.Background(), target)
	if err != nil {
		return fmt.Errorf("failed to capture page: %w", err)
	}

	result, err := converter.Convert(page)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	document := convert.AssembleDocument(page.Title, page.URL, result.Markdown)

	if archivePath != "" {
		if err := recordConversion(page, result); err != nil {
			logger.Warn("failed to archive conversion", zap.Error(err))
		}
	}

	switch {
	case outputFile != "":
		if err := os.WriteFile(outputFile, []byte(document), 0644); err != nil {
			return fmt.Errorf("failed to write to file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Output written to: %s\n", outputFile)
	case noClipboard || !clip.Available():
		fmt.Println(document)
	default:
		if err := clip.Write(document); err != nil {
			return fmt.Errorf("failed to write clipboard: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Copied %d characters to clipboard", len(document))
		if result.Skipped > 0 {
			fmt.Fprintf(os.Stderr, " (%d fragments skipped)", result.Skipped)
		}
		fmt.Fprintln(os.Stderr)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	rules, err := config.LoadSiteRules(cfg.SiteRulesPath)
	if err != nil {
		logger.Fatal("failed to load site rules", zap.Error(err))
	}
	converter := convert.New(logger, convert.Options{
		CharThreshold: cfg.CharThreshold,
		Rules:         rules,
	})

	store, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		logger.Fatal("failed to open archive", zap.Error(err))
	}
	defer store.Close()

	sources := []snapshot.Source{
		snapshot.NewFetchSource(logger, cfg.ProxyURL, 30*time.Second),
		snapshot.NewBrowserSource(logger, cfg.ProxyURL, 60*time.Second),
	}
	handlers := api.NewHandlers(converter, sources, store, logger)
	server := api.NewServer(handlers, cfg.AppPort, logger)
	return server.Start()
}

// pickSource resolves the --source flag. In auto mode, hosts routed to
// fragment extraction get the browser, since their markup only exists
// after client-side rendering.
func pickSource(converter *convert.Converter, logger *zap.Logger, target string) (snapshot.Source, error) {
	switch sourceName {
	case "fetch":
		return snapshot.NewFetchSource(logger, proxyURL, timeout), nil
	case "browser":
		return snapshot.NewBrowserSource(logger, proxyURL, timeout), nil
	case "auto":
		hostname := ""
		if u, err := url.Parse(target); err == nil {
			hostname = u.Hostname()
		}
		if strategy, _ := converter.Route(hostname); strategy == convert.StrategyFragments {
			return snapshot.NewBrowserSource(logger, proxyURL, timeout), nil
		}
		return snapshot.NewFetchSource(logger, proxyURL, timeout), nil
	default:
		return nil, fmt.Errorf("unknown source: %s", sourceName)
	}
}

func recordConversion(page convert.Page, result *convert.Result) error {
	store, err := archive.Open(archivePath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Put(archive.Record{
		URL:       page.URL,
		Title:     page.Title,
		Markdown:  result.Markdown,
		Fragments: result.Fragments,
		Skipped:   result.Skipped,
	})
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// normalizeURL adds https:// when no scheme is present.
func normalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	lower := strings.ToLower(rawURL)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return rawURL
	}
	return "https://" + rawURL
}
