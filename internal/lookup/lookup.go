// Package lookup loads and writes the bundled team alias table.
package lookup

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/mlbcal/internal/domain/teams"
)

// ExpectedTeams is the number of franchises the bundled table must carry.
const ExpectedTeams = 30

//go:embed data/teams.json
var bundled []byte

var (
	readConfig  = jsoniter.ConfigCompatibleWithStandardLibrary
	writeConfig = jsoniter.Config{IndentionStep: 2, EscapeHTML: true}.Froze()
)

// Default parses the table embedded in the binary.
func Default() (teams.Table, error) {
	return Parse(bytes.NewReader(bundled))
}

// Parse reads a JSON object of decimal team ids to alias arrays. Key order in
// the document becomes the table order.
func Parse(r io.Reader) (teams.Table, error) {
	iter := jsoniter.Parse(readConfig, r, 4096)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return teams.Table{}, errors.New("lookup: expected a JSON object of team ids")
	}

	var (
		entries []teams.Entry
		seen    = make(map[int]struct{})
		keyErr  error
	)
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		id, err := strconv.Atoi(key)
		if err != nil {
			keyErr = fmt.Errorf("lookup: team id %q is not a number", key)
			return false
		}
		if _, dup := seen[id]; dup {
			keyErr = fmt.Errorf("lookup: duplicate team id %d", id)
			return false
		}
		seen[id] = struct{}{}

		var aliases []string
		it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			aliases = append(aliases, it.ReadString())
			return it.Error == nil
		})
		entries = append(entries, teams.Entry{ID: id, Aliases: aliases})
		return it.Error == nil
	})
	if keyErr != nil {
		return teams.Table{}, keyErr
	}
	if iter.Error == nil {
		// Only whitespace may follow the object.
		iter.WhatIsNext()
		if iter.Error == nil {
			return teams.Table{}, errors.New("lookup: unexpected data after team object")
		}
	}
	if !errors.Is(iter.Error, io.EOF) {
		return teams.Table{}, fmt.Errorf("lookup: %w", iter.Error)
	}
	return teams.NewTable(entries), nil
}

// Write encodes table as an indented JSON object in table order.
func Write(w io.Writer, table teams.Table) error {
	stream := jsoniter.NewStream(writeConfig, w, 4096)
	stream.WriteObjectStart()
	for i, e := range table.Entries() {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(strconv.Itoa(e.ID))
		stream.WriteArrayStart()
		for j, alias := range e.Aliases {
			if j > 0 {
				stream.WriteMore()
			}
			stream.WriteString(alias)
		}
		stream.WriteArrayEnd()
	}
	stream.WriteObjectEnd()
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}
