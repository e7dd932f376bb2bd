package sign_test

import (
	"fmt"
	"net/http"

	"github.com/fishy/s3bucket/sign"
)

func ExampleURLQuote() {
	fmt.Println(sign.URLQuote("/bucket/a key"))
	fmt.Println(sign.URLQuote("/bucket/åder"))
	// Output:
	// /bucket/a%20key
	// /bucket/%C3%A5der
}

func ExampleContentMD5() {
	fmt.Println(sign.ContentMD5([]byte("Hello!")))
	// Output:
	// lS0sVtBIWVgzZ0e83ZhZDQ==
}

func ExampleCanonicalizeAmz() {
	headers := make(http.Header)
	headers.Set("X-Amz-Second", "hello")
	headers.Set("X-Amz-First", "test")
	headers.Set("Content-Type", "text/plain")
	fmt.Print(sign.CanonicalizeAmz(headers))
	// Output:
	// x-amz-first:test
	// x-amz-second:hello
}

func ExampleSignature() {
	// The well-known example credential from the service documentation.
	secretKey := "uV3F3YluFJax1cknvbcGwgjvx4QpvB+leU8dUj2o"
	stringToSign := "GET\n\n\nTue, 27 Mar 2007 19:36:42 +0000\n" +
		"/johnsmith/photos/puppy.jpg"
	fmt.Println(sign.Signature(secretKey, stringToSign))
	// Output:
	// xXjDGYUmKxnwqr5KXNPGldn5LbA=
}
