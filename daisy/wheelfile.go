package daisy

import (
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/golang/glog"

	"github.com/tarasstruk/gabriele/impression"
	"github.com/tarasstruk/gabriele/symbol"
)

// wheelFile is the on-disk declarative shape of a wheel description:
// a flat table of entries plus the fallback glyph. Accented/composite
// glyphs carry a second petal as the overstrike mark.
type wheelFile struct {
	Unknown entryFile  `toml:"unknown"`
	Entries []entryFile `toml:"entry"`
}

type entryFile struct {
	Char      string `toml:"char"`
	Petal     uint8  `toml:"petal"`
	Impact    string `toml:"impact"`     // "normal" | "strong" | "mild" | "strongest"
	MarkPetal uint8  `toml:"mark_petal"` // 0 means "no accent mark"
	MarkHold  bool   `toml:"mark_hold"`  // true for grave/acute-style dead-key overstrike
}

func impactFromName(name string) impression.Impression {
	switch name {
	case "strong":
		return impression.Strong
	case "mild":
		return impression.Mild
	case "strongest":
		return impression.Strongest
	default:
		return impression.Normal
	}
}

func (e entryFile) toSymbol() (symbol.Symbol, error) {
	runes := []rune(e.Char)
	if len(runes) != 1 {
		return symbol.Symbol{}, fmt.Errorf("daisy: wheel entry %q must name exactly one character", e.Char)
	}
	sym := symbol.New(runes[0]).Petal(e.Petal).Imp(impactFromName(e.Impact))
	if e.MarkPetal != 0 {
		if e.MarkHold {
			sym.Signs[0].After = symbol.HoldOn
		}
		sym.Signs = append(sym.Signs, symbol.Sign{
			Idx:   e.MarkPetal,
			Imp:   impression.Mild,
			After: symbol.MoveRight,
		})
	}
	return sym, nil
}

// LoadFile parses a declarative wheel-description file (TOML) into a
// Db. Parse failures are returned to the caller rather than panicking,
// so a REPL hot-swap can report the failure and keep the current
// database running.
func LoadFile(path string) (Db, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Db{}, fmt.Errorf("daisy: reading wheel file %s: %w", path, err)
	}
	var raw wheelFile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return Db{}, fmt.Errorf("daisy: parsing wheel file %s: %w", path, err)
	}
	db := New()
	if raw.Unknown.Char != "" {
		unknown, err := raw.Unknown.toSymbol()
		if err != nil {
			return Db{}, err
		}
		db.Unknown = unknown
	}
	db.Symbols = make([]symbol.Symbol, 0, len(raw.Entries))
	for _, e := range raw.Entries {
		sym, err := e.toSymbol()
		if err != nil {
			return Db{}, err
		}
		db.Symbols = append(db.Symbols, sym)
	}
	glog.Infof("daisy: loaded %d entries from %s", len(db.Symbols), path)
	return db, nil
}

// HotSwappable guards a Db behind a mutex for the REPL's single
// hot-swap writer / many-reader access pattern. The HAL worker never
// touches it — only the producer-side REPL reads or replaces it, so a
// simple RWMutex (rather than the original's single-threaded interior
// mutability) is the idiomatic Go equivalent.
type HotSwappable struct {
	mu sync.RWMutex
	db Db
}

// NewHotSwappable wraps an initial Db for hot-swap access.
func NewHotSwappable(db Db) *HotSwappable {
	return &HotSwappable{db: db}
}

// Current returns the presently active Db.
func (h *HotSwappable) Current() Db {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.db
}

// Swap replaces the active Db by loading path. On parse failure the
// current Db is retained and the error is returned for the caller to
// log.
func (h *HotSwappable) Swap(path string) error {
	db, err := LoadFile(path)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.db = db
	h.mu.Unlock()
	return nil
}
