package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanzi/internal/dictbuild"
	"github.com/abhisek/hanzi/internal/dictionary"
	"github.com/abhisek/hanzi/internal/gloss"
	"github.com/abhisek/hanzi/internal/llm"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Build, check and enrich dictionary documents",
}

var dictBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a dictionary document from a lexicon export (.csv or .xlsx)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		merge, _ := cmd.Flags().GetString("merge")
		outPath, _ := cmd.Flags().GetString("out")

		rows, err := dictbuild.ReadFile(in)
		if err != nil {
			return fmt.Errorf("read %s: %w", in, err)
		}

		var base *dictionary.Dictionary
		if merge != "" {
			base, err = dictionary.Load(merge)
			if err != nil {
				return fmt.Errorf("load %s: %w", merge, err)
			}
		}

		d, stats := dictbuild.Build(rows, base)
		if err := d.Save(outPath); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Read %d rows: %d characters kept, %d skipped.\n", stats.Rows, stats.Kept, stats.Skipped)
		if base != nil {
			fmt.Fprintf(out, "%d characters merged into %s.\n", stats.Merged, merge)
		}
		fmt.Fprintf(out, "Wrote %d entries to %s.\n", d.Len(), outPath)
		return nil
	},
}

var dictCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a dictionary document (default: the configured dictionary)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path = cfg.Data.Dictionary
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		d, err := dictionary.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK, %d entries, %d phrases without an English gloss.\n",
			path, d.Len(), missingGlosses(d))
		return nil
	},
}

var dictEnrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Fill missing English phrase glosses using the configured LLM",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")
		limit, _ := cmd.Flags().GetInt("limit")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		e, err := setupEnv(cmd, envOptions{NoData: true})
		if err != nil {
			return err
		}
		defer e.close()

		ctx := cmd.Context()
		d, err := dictionary.Load(e.cfg.Data.Dictionary)
		if err != nil {
			return fmt.Errorf("load %s: %w", e.cfg.Data.Dictionary, err)
		}

		provider, err := llm.NewProvider(ctx, e.cfg.LLM, e.store.EventRepo(), e.log)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		gcfg := gloss.DefaultConfig()
		gcfg.Limit = limit
		if concurrency > 0 {
			gcfg.Concurrency = concurrency
		}
		if e.cfg.LLM.Concurrency > 0 && gcfg.Concurrency > e.cfg.LLM.Concurrency {
			gcfg.Concurrency = e.cfg.LLM.Concurrency
		}

		enriched, report, err := gloss.New(provider, gcfg, e.log).Enrich(ctx, d)
		if err != nil {
			return fmt.Errorf("enrich: %w", err)
		}
		if err := enriched.Save(outPath); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Requested glosses for %d phrases of %d characters; filled %d.\n",
			report.Requested, report.Characters, report.Filled)
		if len(report.Failed) > 0 {
			fmt.Fprintf(out, "Failed: %s\n", strings.Join(report.Failed, " "))
		}
		fmt.Fprintf(out, "Wrote %s.\n", outPath)
		return nil
	},
}

// missingGlosses counts the phrases that lack an English gloss.
func missingGlosses(d *dictionary.Dictionary) int {
	_, pending := gloss.Pending(d)
	n := 0
	for _, list := range pending {
		n += len(list)
	}
	return n
}

func init() {
	dictBuildCmd.Flags().String("in", "", "Lexicon export to read (.csv or .xlsx)")
	dictBuildCmd.Flags().String("merge", "", "Existing dictionary document whose phrases are kept")
	dictBuildCmd.Flags().String("out", "tzdict.json", "Dictionary document to write")
	_ = dictBuildCmd.MarkFlagRequired("in")

	dictEnrichCmd.Flags().String("out", "", "Dictionary document to write")
	dictEnrichCmd.Flags().Int("limit", 0, "Enrich at most this many characters (0 for all)")
	dictEnrichCmd.Flags().Int("concurrency", 0, "Characters enriched in parallel (default from gloss settings)")
	_ = dictEnrichCmd.MarkFlagRequired("out")

	dictCmd.AddCommand(dictBuildCmd)
	dictCmd.AddCommand(dictCheckCmd)
	dictCmd.AddCommand(dictEnrichCmd)
}
