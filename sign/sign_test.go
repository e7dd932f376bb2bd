package sign_test

import (
	"net/http"
	"testing"

	"github.com/fishy/s3bucket/sign"
)

const (
	testAccessKey = "0PN5J17HBGZHT7JJ3X82"
	testSecretKey = "uV3F3YluFJax1cknvbcGwgjvx4QpvB+leU8dUj2o"
)

func TestURLQuote(t *testing.T) {
	for _, c := range []struct {
		value  string
		expect string
	}{
		{"", ""},
		{"foo", "foo"},
		{"my file", "my%20file"},
		{"test/foo", "test/foo"},
		{"a+b=c&d", "a%2Bb%3Dc%26d"},
		{"100%", "100%25"},
		{"åder", "%C3%A5der"},
	} {
		if actual := sign.URLQuote(c.value); actual != c.expect {
			t.Errorf("URLQuote(%q) expected %q, got %q", c.value, c.expect, actual)
		}
	}
}

func TestCanonicalizeAmzEmpty(t *testing.T) {
	headers := make(http.Header)
	headers.Set("Content-Type", "text/plain")
	headers.Set("Date", "Tue, 27 Mar 2007 19:36:42 +0000")
	if actual := sign.CanonicalizeAmz(headers); actual != "" {
		t.Errorf("CanonicalizeAmz without x-amz-* headers expected %q, got %q", "", actual)
	}
}

func TestCanonicalizeAmzRepeated(t *testing.T) {
	headers := make(http.Header)
	headers.Add("X-Amz-Test", "a")
	headers.Add("X-Amz-Test", "b")
	expect := "x-amz-test:a,b\n"
	if actual := sign.CanonicalizeAmz(headers); actual != expect {
		t.Errorf("CanonicalizeAmz expected %q, got %q", expect, actual)
	}
}

func TestCanonicalResource(t *testing.T) {
	for _, c := range []struct {
		bucket string
		key    string
		expect string
	}{
		{"johnsmith", "", "/johnsmith/"},
		{"johnsmith", "photos/puppy.jpg", "/johnsmith/photos/puppy.jpg"},
		{"mybucket", "my file", "/mybucket/my%20file"},
	} {
		actual := sign.CanonicalResource(c.bucket, c.key)
		if actual != c.expect {
			t.Errorf(
				"CanonicalResource(%q, %q) expected %q, got %q",
				c.bucket,
				c.key,
				c.expect,
				actual,
			)
		}
	}
}

func TestStringToSign(t *testing.T) {
	headers := make(http.Header)
	headers.Set("Content-Type", "image/jpeg")
	headers.Set("Date", "Tue, 27 Mar 2007 21:15:45 +0000")
	expect := "PUT\n\nimage/jpeg\nTue, 27 Mar 2007 21:15:45 +0000\n" +
		"/johnsmith/photos/puppy.jpg"
	actual := sign.StringToSign(
		"PUT",
		headers,
		sign.CanonicalResource("johnsmith", "photos/puppy.jpg"),
	)
	if actual != expect {
		t.Errorf("StringToSign expected %q, got %q", expect, actual)
	}

	if sig := sign.Signature(testSecretKey, actual); sig != "hcicpDDvL9SsO6AkvxqmIWkmOuQ=" {
		t.Errorf("Signature expected %q, got %q", "hcicpDDvL9SsO6AkvxqmIWkmOuQ=", sig)
	}
}

func TestSignatureDeterministic(t *testing.T) {
	headers := make(http.Header)
	headers.Set("Content-MD5", sign.ContentMD5([]byte("my content")))
	headers.Set("Content-Type", "application/octet-stream")
	headers.Set("Date", "Sat, 23 Aug 2026 00:00:00 GMT")
	headers.Set("X-Amz-Meta-Hairdo", "Secret")
	sts := sign.StringToSign(
		"PUT",
		headers,
		sign.CanonicalResource("mybucket", "my file"),
	)

	first := sign.Signature(testSecretKey, sts)
	second := sign.Signature(testSecretKey, sts)
	if first != second {
		t.Errorf("Signature not deterministic: %q != %q", first, second)
	}
	expect := "/Rla7IBXvhmmHwk+g675gbc8/2s="
	if first != expect {
		t.Errorf("Signature expected %q, got %q", expect, first)
	}
}

func TestAuthorization(t *testing.T) {
	sts := "GET\n\n\nTue, 27 Mar 2007 19:36:42 +0000\n/johnsmith/photos/puppy.jpg"
	expect := "AWS " + testAccessKey + ":xXjDGYUmKxnwqr5KXNPGldn5LbA="
	if actual := sign.Authorization(testAccessKey, testSecretKey, sts); actual != expect {
		t.Errorf("Authorization expected %q, got %q", expect, actual)
	}
}
