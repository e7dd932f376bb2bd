package s3_test

import (
	"context"
	"io/ioutil"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fishy/s3bucket"
	"github.com/fishy/s3bucket/s3"
)

func Example() {
	opts := s3.NewDefaultOptions("access key", "secret key").Build()
	bucket := s3.Open("mybucket", opts)
	ctx := context.Background()

	if err := bucket.Put(
		ctx,
		"my file",
		strings.NewReader("my content"),
		nil,
	); err != nil {
		// TODO: handle error
	}

	obj, err := bucket.Get(ctx, "my file")
	if err != nil {
		// TODO: handle error
	}
	defer obj.Close()
	content, err := ioutil.ReadAll(obj)
	if err != nil {
		// TODO: handle error
	}
	_ = content

	if err := bucket.Delete(ctx, "my file"); err != nil {
		// TODO: handle error
	}
}

func ExampleNewDefaultOptions() {
	logger := logrus.New()
	opts := s3.NewDefaultOptions("access key", "secret key").
		SetEndpoint("https://oss.example.com").
		SetMetadataPrefix("x-oss-meta-").
		SetIdempotentDelete(true).
		SetLogger(logger).
		Build()
	bucket := s3.Open("mybucket", opts)
	_ = bucket
}

func ExampleBucket_PresignedURLFor() {
	opts := s3.NewDefaultOptions("access key", "secret key").Build()
	bucket := s3.Open("mybucket", opts)

	// A URL granting read access to "my file" for the next 10 minutes.
	url := bucket.PresignedURLFor(s3bucket.Key("my file"), 10*time.Minute)
	_ = url
}
