// Handles the "s3b put" command.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fishy/s3bucket"
)

var (
	putMimetype string
	putACL      string
	putMetadata string
)

var putCmd = &cobra.Command{
	Use:   "put <key> [file]",
	Short: "Store an object",
	Long: `Store an object under <key>.

Content is read from [file], or from stdin when no file is given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := openBucket()
		if err != nil {
			return err
		}

		var data io.Reader = os.Stdin
		if len(args) > 1 {
			f, err := os.Open(args[1])
			if err != nil {
				return errors.Wrap(err, "opening content file")
			}
			defer f.Close()
			data = f
		}

		return bucket.Put(
			context.Background(),
			s3bucket.Key(args[0]),
			data,
			&s3bucket.PutOptions{
				Mimetype: putMimetype,
				Metadata: parseKeyValue(putMetadata),
				ACL:      putACL,
			},
		)
	},
}

func init() {
	putCmd.Flags().StringVar(&putMimetype, "mimetype", "", "Content-Type of the object (default: guessed from the key)")
	putCmd.Flags().StringVar(&putACL, "acl", "", "canned ACL, e.g. public-read")
	putCmd.Flags().StringVar(&putMetadata, "metadata", "", "user metadata, on a=1,b=2 format")
	rootCmd.AddCommand(putCmd)
}
