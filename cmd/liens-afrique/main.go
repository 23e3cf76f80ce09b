// Command liens-afrique harvests African news article links from the
// configured listing pages and writes them to a JSON file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Afrik-Presse/liens-afrique/internal/classifier"
	"github.com/Afrik-Presse/liens-afrique/internal/config"
	"github.com/Afrik-Presse/liens-afrique/internal/crawler"
	"github.com/Afrik-Presse/liens-afrique/internal/domain"
	"github.com/Afrik-Presse/liens-afrique/internal/logger"
	"github.com/Afrik-Presse/liens-afrique/internal/store"
	"github.com/Afrik-Presse/liens-afrique/pkg/httpclient"
	"github.com/Afrik-Presse/liens-afrique/pkg/providers"
	"github.com/Afrik-Presse/liens-afrique/pkg/publishers"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	summaryRows     = 10
	summaryTitleMax = 80
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the root command with its flags.
func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "liens-afrique",
		Short:         "Harvest African news article links from French news sites",
		Long:          "Fetches the African-news listing pages of RFI and France24, extracts article links and writes them to a JSON file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfgFile)
		},
	}

	cmd.Flags().StringP("output", "o", "african_news_links.json", "output JSON file")
	cmd.Flags().String("site", "all", "which site to harvest (rfi, france24 or all)")
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging")
	cmd.Flags().String("publishers", "", "publishers registry file for downstream event delivery")
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")

	return cmd
}

// run wires the components together and executes one harvest.
func run(cmd *cobra.Command, cfgFile string) error {
	_ = godotenv.Load()

	v, err := config.NewViper(cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}

	settings, err := config.Load(v)
	if err != nil {
		return err
	}

	level := settings.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	log, err := logger.NewZapLogger(level)
	if err != nil {
		return err
	}

	cfgs, err := providers.ProvidersForSite(settings.Site)
	if err != nil {
		return err
	}
	if ua := strings.TrimSpace(settings.UserAgent); ua != "" {
		for i := range cfgs {
			cfgs[i].Headers = map[string]string{"User-Agent": ua}
		}
	}

	cls := classifier.NewDefault()
	client := httpclient.NewRestyClient(settings.HTTPTimeout())
	registry := providers.DefaultFetcherRegistry(client, cls)
	harvester := crawler.NewHarvester(registry, log, settings.RequestDelay())

	ctx := cmd.Context()
	articles := harvester.Run(ctx, cfgs)

	if len(articles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No African news articles found.")
		return nil
	}

	saved := true
	if err := store.SaveJSON(articles, settings.Output); err != nil {
		log.ErrorObj("saving articles failed", "save_error", map[string]any{
			"path":  settings.Output,
			"error": err.Error(),
		})
		saved = false
	}

	printSummary(cmd.OutOrStdout(), articles)
	if saved {
		fmt.Fprintf(cmd.OutOrStdout(), "\nAll articles saved to %s\n", settings.Output)
	}

	publishArticles(ctx, settings.PublishersFile, articles, log)

	return nil
}

// bindFlags lets changed CLI flags take precedence over file and env values.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		"output":          "output",
		"site":            "site",
		"publishers_file": "publishers",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// publishArticles fans found links out to the configured publishers, if any.
func publishArticles(ctx context.Context, path string, articles []domain.Article, log logger.Logger) {
	if strings.TrimSpace(path) == "" {
		return
	}

	reg, err := publishers.LoadRegistry(path)
	if err != nil {
		log.ErrorObj("loading publishers registry failed", "publishers_error", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return
	}

	pubs, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), reg.Enabled(), log)
	if err != nil {
		log.ErrorObj("building publishers failed", "publishers_error", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return
	}

	now := time.Now()
	events := make([]publishers.Event, 0, len(articles))
	for _, art := range articles {
		events = append(events, publishers.NewEvent(strings.ToLower(art.Source), art, now))
	}

	publishers.PublishEvents(ctx, pubs, events, log)
}

// printSummary renders the first few articles and the count of the rest.
func printSummary(w io.Writer, articles []domain.Article) {
	fmt.Fprintf(w, "\nFound %d African news articles:\n", len(articles))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Source", "Title", "URL"})

	for i, art := range articles {
		if i >= summaryRows {
			break
		}
		t.AppendRow(table.Row{i + 1, art.Source, truncateString(art.Title, summaryTitleMax), art.URL})
	}
	if remaining := len(articles) - summaryRows; remaining > 0 {
		t.AppendFooter(table.Row{"", "", fmt.Sprintf("... and %d more articles", remaining), ""})
	}

	t.Render()
}

// truncateString shortens s to max runes, appending an ellipsis.
func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
