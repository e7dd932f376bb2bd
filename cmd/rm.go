// Handles the "s3b rm" command.
package cmd

import (
	"context"

	"github.com/fishy/errbatch"
	"github.com/spf13/cobra"

	"github.com/fishy/s3bucket"
)

var rmCmd = &cobra.Command{
	Use:   "rm <key>...",
	Short: "Delete one or more objects",
	Long: `Delete the objects stored under the given keys.

All deletes are attempted even if some of them fail;
the failures are reported together.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := openBucket()
		if err != nil {
			return err
		}

		ret := new(errbatch.ErrBatch)
		for _, arg := range args {
			ret.Add(bucket.Delete(context.Background(), s3bucket.Key(arg)))
		}
		return ret.Compile()
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
