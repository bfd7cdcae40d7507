package version

import (
	"strings"
	"testing"
)

func TestInfoNamesTheBinaryAndBuildMetadata(t *testing.T) {
	got := Info()
	if !strings.HasPrefix(got, "tripmark ") {
		t.Fatalf("Info() = %q, want a tripmark-prefixed version line", got)
	}
	for _, field := range []string{Version, Commit, Date} {
		if !strings.Contains(got, field) {
			t.Fatalf("Info() = %q, missing %q", got, field)
		}
	}
}
