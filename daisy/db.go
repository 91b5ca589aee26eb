// Package daisy holds the wheel database: the char → Symbol mapping
// that is the single source of truth for how a character gets printed,
// plus the run-length-aware streaming lookup the Action compiler
// consumes.
package daisy

import (
	"github.com/tarasstruk/gabriele/symbol"
)

// Db is a char → Symbol mapping plus an unknown fallback. Lookups are
// linear scans — the table is small (at most ~130 entries) and built
// once per session, so a map is not worth the complexity of keeping
// Symbols and their source order in sync.
type Db struct {
	Symbols []symbol.Symbol
	Unknown symbol.Symbol
}

// New returns the zero-symbol Db with the standard fallback glyph.
func New() Db {
	return Db{Unknown: symbol.New('*').Petal(41)}
}

// Get returns a copy of the Symbol matching character, with
// RepeatTimes set to count when count > 1. If no Symbol matches,
// returns the fallback (Unknown) — lookup failures are lossy by
// design, not an error.
func (db Db) Get(character rune, count int) symbol.Symbol {
	for _, sym := range db.Symbols {
		if sym.Character != character {
			continue
		}
		if count > 1 {
			sym.RepeatTimes = count
		}
		return sym
	}
	return db.Unknown
}

// Printables streams input's runes through run-length coalescing
// (consecutive identical runes collapse into a single (count, rune)
// pair) and maps each pair through Get. This coalescing lets the
// Action compiler emit one multi-step motion instruction for a long
// whitespace or newline run instead of one per character.
func (db Db) Printables(input string) []symbol.Symbol {
	runes := []rune(input)
	out := make([]symbol.Symbol, 0, len(runes))
	i := 0
	for i < len(runes) {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		out = append(out, db.Get(runes[i], j-i))
		i = j
	}
	return out
}
