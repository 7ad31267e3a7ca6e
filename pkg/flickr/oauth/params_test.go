package oauth

import (
	"errors"
	"testing"
)

func TestParseAuthResponse(t *testing.T) {
	body := []byte("oauth_token=T1&oauth_token_secret=S1&oauth_callback_confirmed=true&fullname=Alice%20A")
	fields, err := parseAuthResponse(body)
	if err != nil {
		t.Fatalf("parseAuthResponse error: %v", err)
	}
	if fields["oauth_token"] != "T1" || fields["oauth_token_secret"] != "S1" {
		t.Errorf("token fields wrong: %v", fields)
	}
	if fields["oauth_callback_confirmed"] != "true" {
		t.Errorf("confirmed field wrong: %v", fields)
	}
	if fields["fullname"] != "Alice A" {
		t.Errorf("fullname not percent-decoded: %q", fields["fullname"])
	}
}

func TestParseAuthResponseMalformed(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("=orphan"),
		[]byte("key=%ZZ"),
	}

	for _, body := range cases {
		if _, err := parseAuthResponse(body); !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("parseAuthResponse(%q) = %v, want ErrMalformedResponse", body, err)
		}
	}
}

func TestVerifierFromCallback(t *testing.T) {
	verifier, err := verifierFromCallback("https://cb?x=1&oauth_verifier=V1")
	if err != nil {
		t.Fatalf("verifierFromCallback error: %v", err)
	}
	if verifier != "V1" {
		t.Errorf("verifier = %q, want V1", verifier)
	}
}

func TestVerifierFromCallbackDecodes(t *testing.T) {
	verifier, err := verifierFromCallback("pictag://auth?oauth_token=T1&oauth_verifier=a%2Fb")
	if err != nil {
		t.Fatalf("verifierFromCallback error: %v", err)
	}
	if verifier != "a/b" {
		t.Errorf("verifier = %q, want a/b", verifier)
	}
}

func TestVerifierFromCallbackMissing(t *testing.T) {
	cases := []string{
		"https://cb",
		"https://cb?only=one",
		"https://cb?x=1&oauth_verifier=",
	}

	for _, callback := range cases {
		if _, err := verifierFromCallback(callback); !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("verifierFromCallback(%q) = %v, want ErrMalformedResponse", callback, err)
		}
	}
}
