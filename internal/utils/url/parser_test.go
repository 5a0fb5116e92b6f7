package urlutil

import "testing"

func TestValidate(t *testing.T) {
	valid := []string{
		"http://example.com",
		"https://example.com/path",
	}
	for _, u := range valid {
		if err := ValidateURL(u); err != nil {
			t.Fatalf("expected valid, got error: %v", err)
		}
	}

	invalid := []string{"ftp://example.com", "//example.com", "http:///"}
	for _, u := range invalid {
		if err := ValidateURL(u); err == nil {
			t.Fatalf("expected invalid for %s", u)
		}
	}
}

func TestNormalizeTarget(t *testing.T) {
	cases := map[string]string{
		"example.com":          "https://example.com",
		"www.example.com/page": "https://www.example.com/page",
		"http://example.com":   "http://example.com",
		"https://example.com":  "https://example.com",
		"HTTPS://example.com":  "HTTPS://example.com",
		"  example.com  ":      "https://example.com",
	}
	for input, want := range cases {
		if got := NormalizeTarget(input); got != want {
			t.Errorf("NormalizeTarget(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestRootDomain(t *testing.T) {
	cases := map[string]string{
		"https://www.example.com/page":    "example",
		"https://example.com":             "example",
		"http://blog.example.com/a?q=1":   "blog",
		"https://sub.www.example.com":     "sub",
		"wwwexample.com":                  "wwwexample",
		"example.com":                     "example",
		"https://localhost:8080/x":        "localhost",
		"https://www.gov.uk/some/service": "gov",
	}
	for input, want := range cases {
		if got := RootDomain(input); got != want {
			t.Errorf("RootDomain(%q) = %q, want %q", input, got, want)
		}
	}
}
