// Handles the "s3b url" command.
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fishy/s3bucket"
)

var (
	urlPresign bool
	urlExpire  time.Duration
)

var urlCmd = &cobra.Command{
	Use:   "url <key>",
	Short: "Print the URL for an object",
	Long: `Print the URL for the object stored under <key>.

With --presign, the URL carries query-string authentication and grants
temporary read access to a private object.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := openBucket()
		if err != nil {
			return err
		}

		key := s3bucket.Key(args[0])
		if urlPresign {
			fmt.Println(bucket.PresignedURLFor(key, urlExpire))
		} else {
			fmt.Println(bucket.URLFor(key))
		}
		return nil
	},
}

func init() {
	urlCmd.Flags().BoolVar(&urlPresign, "presign", false, "sign the URL for temporary access")
	urlCmd.Flags().DurationVar(&urlExpire, "expire", 0, "presigned URL validity (default 5m)")
	rootCmd.AddCommand(urlCmd)
}
