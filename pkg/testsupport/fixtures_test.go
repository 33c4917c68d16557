package testsupport

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestWriteFileAndLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fixture.txt")
	content := []byte("hello fixture")

	WriteFile(t, path, content)

	got := LoadFixture(t, path)
	if !bytes.Equal(got, content) {
		t.Errorf("LoadFixture() = %q, want %q", got, content)
	}
}

func TestLoadFixtureJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	WriteFile(t, path, []byte(`{"name":"square","hits":3}`))

	var dest struct {
		Name string `json:"name"`
		Hits int    `json:"hits"`
	}
	LoadFixtureJSON(t, path, &dest)

	if dest.Name != "square" || dest.Hits != 3 {
		t.Errorf("LoadFixtureJSON() = %+v, want {square 3}", dest)
	}
}

func TestFixturePath(t *testing.T) {
	if got := FixturePath("keys.json"); got != filepath.Join("testdata", "keys.json") {
		t.Errorf("FixturePath() = %q", got)
	}
}
