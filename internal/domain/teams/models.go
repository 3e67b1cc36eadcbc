package teams

import "strings"

// Team is the subset of the upstream team listing used to build lookup aliases.
type Team struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Abbreviation  string `json:"abbreviation"`
	TeamCode      string `json:"teamCode"`
	ClubName      string `json:"clubName"`
	FranchiseName string `json:"franchiseName"`
	ShortName     string `json:"shortName"`
}

// Entry maps one team id to the lowercase aliases a user may type for it.
type Entry struct {
	ID      int
	Aliases []string
}

// Has reports whether alias (already lowercased) belongs to the entry.
func (e Entry) Has(alias string) bool {
	for _, a := range e.Aliases {
		if a == alias {
			return true
		}
	}
	return false
}

// Table is the ordered team lookup. Order decides which entry wins when an
// alias is shared between franchises.
type Table struct {
	entries []Entry
}

// NewTable builds a table from entries in the given order. Aliases are
// lowercased and de-duplicated within each entry.
func NewTable(entries []Entry) Table {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, Entry{ID: e.ID, Aliases: normalizeAliases(e.Aliases)})
	}
	return Table{entries: out}
}

// Entries returns a copy of the table entries in lookup order.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of teams in the table.
func (t Table) Len() int {
	return len(t.entries)
}

// Aliases returns the aliases registered for id.
func (t Table) Aliases(id int) ([]string, bool) {
	for _, e := range t.entries {
		if e.ID == id {
			return append([]string(nil), e.Aliases...), true
		}
	}
	return nil, false
}

// Extras holds hand-curated aliases appended after the generated ones.
var Extras = map[int][]string{
	109: {"diamondbacks", "dbacks"},
	117: {"trashtros"},
	133: {"oakland", "oak"},
}

// BuildTable turns an upstream team listing into a lookup table, keeping the
// listing order. Aliases come from the abbreviation, team code, club name,
// franchise name and short name, followed by any extras for that id.
func BuildTable(listing []Team, extras map[int][]string) Table {
	entries := make([]Entry, 0, len(listing))
	for _, t := range listing {
		aliases := []string{t.Abbreviation, t.TeamCode, t.ClubName, t.FranchiseName, t.ShortName}
		aliases = append(aliases, extras[t.ID]...)
		entries = append(entries, Entry{ID: t.ID, Aliases: aliases})
	}
	return NewTable(entries)
}

func normalizeAliases(aliases []string) []string {
	seen := make(map[string]struct{}, len(aliases))
	out := make([]string, 0, len(aliases))
	for _, a := range aliases {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
