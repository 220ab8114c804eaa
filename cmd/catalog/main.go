package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/spf13/cobra"

	"github.com/lehmann314159/heimwerker/internal/catalog"
	"github.com/lehmann314159/heimwerker/internal/database"
	"github.com/lehmann314159/heimwerker/internal/gallery"
	"github.com/lehmann314159/heimwerker/internal/i18n"
	"github.com/lehmann314159/heimwerker/internal/models"
	"github.com/lehmann314159/heimwerker/internal/prefs"
	"github.com/lehmann314159/heimwerker/internal/repository"
)

// cliVisitor is the visitor id the terminal host stores its language under.
const cliVisitor = "cli"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "catalog",
		Short:        "Browse the Heimwerker Meister video catalog in the terminal",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("lang", "", "Display language (de, en); remembered for later runs")
	rootCmd.PersistentFlags().String("data-dir", env.Str("DATA_DIR", "./data"), "Directory of the preference database")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List videos, grouped by category unless searching or filtering",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	listCmd.Flags().StringP("q", "q", "", "Search title and description")
	listCmd.Flags().StringP("category", "c", models.AllCategories, "Only show one category")
	listCmd.Flags().Bool("json", false, "Output JSON")

	showCmd := &cobra.Command{
		Use:   "show <youtube-id>",
		Short: "Show the details of one video",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories",
		Args:  cobra.NoArgs,
		RunE:  runCategories,
	}

	rootCmd.AddCommand(listCmd, showCmd, categoriesCmd)
	return rootCmd
}

// withController runs fn with a bootstrapped controller painting onto a text
// screen. The language comes from --lang, which is saved, or else from the
// preference database.
func withController(cmd *cobra.Command, fn func(*gallery.Controller, *textScreen) error) error {
	lang, _ := cmd.Flags().GetString("lang")
	if cmd.Flags().Changed("lang") && !i18n.Supported(lang) {
		return fmt.Errorf("unsupported language %q (want one of %v)", lang, i18n.Languages)
	}
	dataDir, _ := cmd.Flags().GetString("data-dir")
	db, err := database.New(dataDir)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	screen := &textScreen{}
	store := prefs.Language{Store: repository.New(db), Visitor: cliVisitor}
	ctrl := gallery.New(catalog.Default(), store, screen)
	ctrl.Bootstrap(ctx)
	if cmd.Flags().Changed("lang") {
		ctrl.SetLanguage(ctx, lang)
	}
	return fn(ctrl, screen)
}

func runList(cmd *cobra.Command, _ []string) error {
	q, _ := cmd.Flags().GetString("q")
	category, _ := cmd.Flags().GetString("category")
	asJSON, _ := cmd.Flags().GetBool("json")

	return withController(cmd, func(ctrl *gallery.Controller, screen *textScreen) error {
		if asJSON {
			query := catalog.Query{Language: ctrl.State().Language, Search: q, Category: category}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(catalog.Default().Compute(query))
		}
		ctrl.UpdateSearch(q)
		ctrl.UpdateFilter(category)
		fmt.Fprint(cmd.OutOrStdout(), screen.Render())
		return nil
	})
}

func runShow(cmd *cobra.Command, args []string) error {
	return withController(cmd, func(ctrl *gallery.Controller, screen *textScreen) error {
		if !ctrl.ActivateCard(args[0], "") {
			return fmt.Errorf("video %q not found", args[0])
		}
		fmt.Fprint(cmd.OutOrStdout(), screen.RenderDetail())
		return nil
	})
}

func runCategories(cmd *cobra.Command, _ []string) error {
	return withController(cmd, func(ctrl *gallery.Controller, _ *textScreen) error {
		lang := ctrl.State().Language
		cat := catalog.Default()
		counts := make(map[string]int)
		for _, v := range cat.Videos() {
			counts[v.Category]++
		}
		out := cmd.OutOrStdout()
		for _, c := range cat.Categories() {
			fmt.Fprintf(out, "%-14s %s %s\n", c.Key, c.Name.In(lang), dimStyle.Render(fmt.Sprintf("(%d)", counts[c.Key])))
		}
		return nil
	})
}
