package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// LoadJSONFixture decodes a JSON document from the package testdata
// directory into v. The path is given relative to testdata.
func LoadJSONFixture(tb testing.TB, name string, v any) {
	tb.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		tb.Fatalf("read fixture %s: %v", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		tb.Fatalf("decode fixture %s: %v", name, err)
	}
}
