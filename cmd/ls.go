// Handles the "s3b ls" command.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fishy/s3bucket/s3"
)

var (
	lsMarker    string
	lsLimit     int
	lsDelimiter string
)

var lsCmd = &cobra.Command{
	Use:   "ls [prefix]",
	Short: "List the contents of the bucket",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := openBucket()
		if err != nil {
			return err
		}

		opts := &s3.ListOptions{
			Marker:    lsMarker,
			Limit:     lsLimit,
			Delimiter: lsDelimiter,
		}
		if len(args) > 0 {
			opts.Prefix = args[0]
		}
		result, err := bucket.List(context.Background(), opts)
		if err != nil {
			return err
		}
		for _, entry := range result.Entries {
			fmt.Printf("%12d  %s  %s\n", entry.Size, entry.Modify.Format("2006-01-02 15:04:05"), entry.Key)
		}
		if result.IsTruncated {
			fmt.Println("(truncated, continue with --marker)")
		}
		return nil
	},
}

func init() {
	lsCmd.Flags().StringVar(&lsMarker, "marker", "", "list keys lexicographically after this one")
	lsCmd.Flags().IntVar(&lsLimit, "limit", 0, "cap the number of entries (default: service default)")
	lsCmd.Flags().StringVar(&lsDelimiter, "delimiter", "", "group keys up to this delimiter")
	rootCmd.AddCommand(lsCmd)
}
