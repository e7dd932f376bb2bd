// Handles the "s3b cp" command.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fishy/s3bucket"
	"github.com/fishy/s3bucket/s3"
)

var (
	cpMimetype string
	cpACL      string
	cpMetadata string
)

var cpCmd = &cobra.Command{
	Use:   "cp <bucket/key> <key>",
	Short: "Copy an object server-side",
	Long: `Copy the object at <bucket/key> to <key> in the configured bucket,
without downloading it.

Metadata is carried over from the source unless --metadata is given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := openBucket()
		if err != nil {
			return err
		}

		return bucket.Copy(
			context.Background(),
			args[0],
			s3bucket.Key(args[1]),
			&s3.CopyOptions{
				Mimetype: cpMimetype,
				Metadata: parseKeyValue(cpMetadata),
				ACL:      cpACL,
			},
		)
	},
}

func init() {
	cpCmd.Flags().StringVar(&cpMimetype, "mimetype", "", "Content-Type of the copy (default: guessed from the key)")
	cpCmd.Flags().StringVar(&cpACL, "acl", "", "canned ACL for the copy")
	cpCmd.Flags().StringVar(&cpMetadata, "metadata", "", "replace user metadata, on a=1,b=2 format")
	rootCmd.AddCommand(cpCmd)
}
