package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mzivic7/cmus-auto-lyrics/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "manage the lyrics cache",
	Long:  `inspect and manage locally cached lyrics.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		diskCache := cache.GetGlobalCache()

		count, sizeBytes, err := diskCache.Stats()
		if err != nil {
			return fmt.Errorf("failed to read cache stats: %w", err)
		}

		fmt.Printf("cache directory: %s\n", diskCache.Dir())
		fmt.Printf("cached songs:    %d\n", count)
		fmt.Printf("total size:      %s\n", formatBytes(sizeBytes))

		return nil
	},
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "list cached songs",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := cache.GetGlobalCache().ListAll()
		if err != nil {
			return fmt.Errorf("failed to list cache: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("cache is empty")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ARTIST\tTITLE\tSYNCED\tSOURCE\tEXPIRES")
		for _, entry := range entries {
			fmt.Fprintln(w, cacheListRow(entry))
		}

		return w.Flush()
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "remove all cached lyrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cache.GetGlobalCache().Clear(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}

		fmt.Println("cache cleared")

		return nil
	},
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "remove expired cache entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, err := cache.GetGlobalCache().Prune()
		if err != nil {
			return fmt.Errorf("failed to prune cache: %w", err)
		}

		fmt.Printf("removed %d expired entries\n", removed)

		return nil
	},
}

// cacheListRow formats one tab-separated listing row. ExpiresAt is stored
// as a unix timestamp and shown as a date.
func cacheListRow(entry *cache.Entry) string {
	return fmt.Sprintf("%s\t%s\t%v\t%s\t%s",
		entry.Artist,
		entry.Title,
		entry.Synced,
		entry.Source,
		time.Unix(entry.ExpiresAt, 0).Format("2006-01-02"),
	)
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePruneCmd)
	rootCmd.AddCommand(cacheCmd)
}
