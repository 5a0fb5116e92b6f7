package headers

import (
	"reflect"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	in := []string{"User-Agent: Bot", "Accept: text/html", "BadHeader", ": orphan value", "Accept: text/plain"}
	out := ParseHeaders(in)
	expected := map[string]string{"User-Agent": "Bot", "Accept": "text/plain"}
	if !reflect.DeepEqual(out, expected) {
		t.Fatalf("unexpected parse result: %#v", out)
	}
}

func TestParseHeaders_Empty(t *testing.T) {
	if out := ParseHeaders(nil); len(out) != 0 {
		t.Fatalf("ParseHeaders(nil) = %#v, want empty map", out)
	}
}

func TestParseHeaders_ValueWithColon(t *testing.T) {
	out := ParseHeaders([]string{"Referer: https://example.com/page"})
	if out["Referer"] != "https://example.com/page" {
		t.Fatalf("colon in value mangled: %#v", out)
	}
}
