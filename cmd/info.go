// Handles the "s3b info" command.
package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fishy/s3bucket"
)

var infoCmd = &cobra.Command{
	Use:   "info <key>",
	Short: "Show an object's metadata without downloading it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := openBucket()
		if err != nil {
			return err
		}

		info, err := bucket.Info(context.Background(), s3bucket.Key(args[0]))
		if err != nil {
			return err
		}

		fmt.Printf("mimetype: %s\n", info.Mimetype)
		fmt.Printf("size:     %d\n", info.Size)
		fmt.Printf("modify:   %s\n", info.Modify)
		names := make([]string, 0, len(info.Metadata))
		for name := range info.Metadata {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("metadata: %s=%s\n", name, info.Metadata[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
