package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vytor/kanaflash/internal/config"
	"github.com/vytor/kanaflash/internal/kana"
	"github.com/vytor/kanaflash/internal/models"
)

var (
	recordsSortBy string
	recordsOrder  string
	recordsOutput string

	kanaType     string
	kanaCategory string
)

// withApp builds the app for a one-shot command. Logs go to stderr so stdout
// carries only the command output.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	cfg := config.Load()
	log := setupLogger(cfg, os.Stderr, false)

	a, err := newApp(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(cmd.Context(), a)
}

func newMistakesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mistakes",
		Short: "Inspect the mistake collection",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List kana answered wrongly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				printMistakes(cmd.OutOrStdout(), a.mistakeService.List(ctx), a.settingsService.Get(ctx).RequiredCorrectCount)
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every mistake",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				a.mistakeService.Clear(ctx)
				fmt.Fprintln(cmd.OutOrStdout(), "mistakes cleared")
				return nil
			})
		},
	})
	return cmd
}

func newRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Inspect test records",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List test records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				records, err := a.testRecordService.List(ctx, models.RecordSort{By: recordsSortBy, Order: recordsOrder})
				if err != nil {
					return err
				}
				printRecords(cmd.OutOrStdout(), records)
				return nil
			})
		},
	}
	list.Flags().StringVar(&recordsSortBy, "sort", models.SortByDate, "sort by date, accuracy or duration")
	list.Flags().StringVar(&recordsOrder, "order", models.SortDesc, "asc or desc")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write test records to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				f, err := os.Create(recordsOutput)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", recordsOutput, err)
				}
				sortOrder := models.RecordSort{By: recordsSortBy, Order: recordsOrder}
				if err := a.testRecordService.Export(ctx, sortOrder, f); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", recordsOutput)
				return nil
			})
		},
	}
	exportCmd.Flags().StringVarP(&recordsOutput, "output", "o", "kana-records.xlsx", "output file")
	exportCmd.Flags().StringVar(&recordsSortBy, "sort", models.SortByDate, "sort by date, accuracy or duration")
	exportCmd.Flags().StringVar(&recordsOrder, "order", models.SortDesc, "asc or desc")

	cmd.AddCommand(list, exportCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every test record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				a.testRecordService.Clear(ctx)
				fmt.Fprintln(cmd.OutOrStdout(), "records cleared")
				return nil
			})
		},
	})
	return cmd
}

func newKanaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kana",
		Short: "Print the reference kana table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !kana.ValidType(kanaType) {
				return fmt.Errorf("unknown kana type %q", kanaType)
			}
			if !kana.ValidCategory(kanaCategory) {
				return fmt.Errorf("unknown category %q", kanaCategory)
			}
			printKana(cmd.OutOrStdout(), kana.List(kanaType, kanaCategory))
			return nil
		},
	}
	cmd.Flags().StringVar(&kanaType, "type", models.KanaTypeBoth, "hiragana, katakana or both")
	cmd.Flags().StringVar(&kanaCategory, "category", models.CategoryAll, "seion, dakuon, youon or all")
	return cmd
}

func printMistakes(w io.Writer, entries []models.MistakeEntry, threshold int) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KANA\tROMAJI\tCORRECT\tADDED")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%s\n", e.Kana.Kana, e.Kana.Romaji, e.ConsecutiveCorrect, threshold, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	_ = tw.Flush()
}

func printRecords(w io.Writer, records []models.TestRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDATE\tACCURACY\tDURATION\tSCORE\tID")
	for i, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%.1f%%\t%.1fs\t%d/%d\t%s\n",
			strconv.Itoa(i+1), r.Date.Format("2006-01-02 15:04"), r.Accuracy, r.Duration, r.Correct, r.Total, r.ID)
	}
	_ = tw.Flush()
}

func printKana(w io.Writer, items []models.KanaItem) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, k := range items {
		fmt.Fprintf(tw, "%s\t%s\n", k.Kana, k.Romaji)
	}
	_ = tw.Flush()
}
