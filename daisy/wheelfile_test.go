package daisy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tarasstruk/gabriele/symbol"
)

const sampleWheel = `
[unknown]
char = "*"
petal = 41

[[entry]]
char = "a"
petal = 94

[[entry]]
char = "A"
petal = 36
impact = "strong"

[[entry]]
char = "à"
petal = 94
mark_petal = 72
mark_hold = true
`

func TestLoadFileParsesEntriesAndFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wheel.toml")
	if err := os.WriteFile(path, []byte(sampleWheel), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	db, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(db.Symbols) != 3 {
		t.Fatalf("got %d symbols, want 3", len(db.Symbols))
	}
	if db.Unknown.Signs[0].Idx != 41 {
		t.Errorf("unknown petal = %d, want 41", db.Unknown.Signs[0].Idx)
	}

	strongA := db.Get('A', 1)
	if got, want := strongA.Signs[0].Imp.Value(), uint8(47); got != want {
		t.Errorf("'A' impression = %d, want %d (strong)", got, want)
	}

	accented := db.Get('à', 1)
	if len(accented.Signs) != 2 || accented.Signs[0].After != symbol.HoldOn {
		t.Errorf("accented symbol not composed correctly: %+v", accented)
	}
}

func TestLoadFileReturnsErrorOnMissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing wheel file, got nil")
	}
}

func TestHotSwappableRetainsCurrentOnParseFailure(t *testing.T) {
	good := German()
	hs := NewHotSwappable(good)

	if err := hs.Swap(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected Swap to fail for a missing file")
	}
	if len(hs.Current().Symbols) != len(good.Symbols) {
		t.Errorf("Swap on failure should retain the current Db")
	}
}
