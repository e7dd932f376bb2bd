// Handles the "s3b mb" and "s3b rb" commands.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var mbACL string

var mbCmd = &cobra.Command{
	Use:   "mb",
	Short: "Create the configured bucket",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := openBucket()
		if err != nil {
			return err
		}
		return bucket.PutBucket(context.Background(), mbACL)
	},
}

var rbCmd = &cobra.Command{
	Use:   "rb",
	Short: "Delete the configured bucket",
	Long:  `Delete the configured bucket. Most services require it to be empty.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, err := openBucket()
		if err != nil {
			return err
		}
		return bucket.DeleteBucket(context.Background())
	},
}

func init() {
	mbCmd.Flags().StringVar(&mbACL, "acl", "", "canned ACL for the new bucket")
	rootCmd.AddCommand(mbCmd)
	rootCmd.AddCommand(rbCmd)
}
