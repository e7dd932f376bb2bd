// Handles the "s3b get" command.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fishy/s3bucket"
)

var getCmd = &cobra.Command{
	Use:   "get <key> [file]",
	Short: "Retrieve an object",
	Long: `Retrieve the object stored under <key>.

Content is written to [file], or to stdout when no file is given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := openBucket()
		if err != nil {
			return err
		}

		obj, err := bucket.Get(context.Background(), s3bucket.Key(args[0]))
		if err != nil {
			return err
		}
		defer obj.Close()

		var out io.Writer = os.Stdout
		if len(args) > 1 {
			f, err := os.Create(args[1])
			if err != nil {
				return errors.Wrap(err, "creating output file")
			}
			defer f.Close()
			out = f
		}
		_, err = io.Copy(out, obj)
		return err
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
