package directive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tarasstruk/gabriele/daisy"
)

func TestParseDaisyHotSwapDirective(t *testing.T) {
	d, err := Parse("@>daisy wheels/German.toml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Directive{Kind: DaisyHotSwap, Arg: "wheels/German.toml"}
	if d != want {
		t.Errorf("Parse = %+v, want %+v", d, want)
	}
}

func TestParseRejectsUnknownText(t *testing.T) {
	if _, err := Parse("hello world"); err != ErrUnknownDirective {
		t.Errorf("err = %v, want ErrUnknownDirective", err)
	}
}

func TestProcessSwapsDatabaseOnValidDirective(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wheel.toml")
	contents := `
[unknown]
char = "*"
petal = 41

[[entry]]
char = "z"
petal = 99
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	db := daisy.NewHotSwappable(daisy.German())
	Process("@>daisy "+path, db)

	sym := db.Current().Get('z', 1)
	if sym.Signs[0].Idx != 99 {
		t.Errorf("after swap, 'z' petal = %d, want 99", sym.Signs[0].Idx)
	}
}

func TestProcessRetainsDatabaseOnMissingFile(t *testing.T) {
	db := daisy.NewHotSwappable(daisy.German())
	before := db.Current()
	Process("@>daisy /nonexistent/path.toml", db)
	if len(db.Current().Symbols) != len(before.Symbols) {
		t.Errorf("database changed after failed swap")
	}
}
