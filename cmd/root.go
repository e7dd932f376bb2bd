// Root of command-line argument parsing.
package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fishy/s3bucket/s3"
)

var (
	cfgFile string
	verbose bool

	logger = logrus.New()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "s3b",
	Short: "Simple object storage client",
	Long: `A dictionary-style command line client for S3-compatible object storage.

Credentials and the bucket can be given as flags, in a config file,
or through S3B_* environment variables (e.g. S3B_ACCESS_KEY).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main(). It only needs to happen once.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.s3bucket.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every request")
	flags.String("bucket", "", "bucket to operate on")
	flags.String("endpoint", "", "service endpoint (default "+s3.DefaultEndpoint+")")
	flags.String("access-key", "", "access key id")
	flags.String("secret-key", "", "secret key")
	flags.Bool("idempotent-delete", false, "treat deleting an absent key as success")

	for _, name := range []string{
		"bucket",
		"endpoint",
		"access-key",
		"secret-key",
		"idempotent-delete",
	} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".s3bucket")
		viper.AddConfigPath("$HOME")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("s3b")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	// A missing config file is fine, flags and env still work.
	viper.ReadInConfig()

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
}

// openBucket builds the bucket handle from the resolved configuration.
func openBucket() (*s3.Bucket, error) {
	name := viper.GetString("bucket")
	if name == "" {
		return nil, errors.New("no bucket configured (--bucket or S3B_BUCKET)")
	}
	accessKey := viper.GetString("access-key")
	secretKey := viper.GetString("secret-key")
	if accessKey == "" || secretKey == "" {
		return nil, errors.New("no credentials configured (--access-key/--secret-key or S3B_ACCESS_KEY/S3B_SECRET_KEY)")
	}

	builder := s3.NewDefaultOptions(accessKey, secretKey).SetLogger(logger)
	if endpoint := viper.GetString("endpoint"); endpoint != "" {
		builder.SetEndpoint(endpoint)
	}
	if viper.GetBool("idempotent-delete") {
		builder.SetIdempotentDelete(true)
	}
	return s3.Open(name, builder.Build()), nil
}

// parseKeyValue parses "a=1,b=2" style metadata flags.
func parseKeyValue(s string) map[string]string {
	if s == "" {
		return nil
	}
	result := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		keyValue := strings.SplitN(pair, "=", 2)
		if len(keyValue) == 2 {
			result[keyValue[0]] = keyValue[1]
		}
	}
	return result
}
