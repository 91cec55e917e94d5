// SPDX-License-Identifier: MIT
// Package: cayley/builder
//
// roster.go — default reader for ideology rosters.
//
// Format: comma-separated rows, rank in column 0, ideology score in
// column 3, member name in column 8. A row whose name column reads "name"
// is a header and is skipped. Extra columns are ignored.

package builder

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Roster column layout.
const (
	rosterRankCol     = 0
	rosterIdeologyCol = 3
	rosterNameCol     = 8
	rosterHeaderName  = "name"
)

// LoadRoster parses roster rows from r. Rank and name consistency is left
// to Ideology.
func LoadRoster(r io.Reader) ([]Member, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var members []Member
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("LoadRoster: %w", err)
		}
		if len(row) <= rosterNameCol {
			return nil, fmt.Errorf("LoadRoster: line %d: %d columns, need %d: %w",
				line, len(row), rosterNameCol+1, ErrInvalidRoster)
		}
		name := strings.TrimSpace(row[rosterNameCol])
		if name == rosterHeaderName {
			continue
		}
		rank, err := strconv.Atoi(strings.TrimSpace(row[rosterRankCol]))
		if err != nil {
			return nil, fmt.Errorf("LoadRoster: line %d: rank: %v: %w", line, err, ErrInvalidRoster)
		}
		ideology, err := strconv.ParseFloat(strings.TrimSpace(row[rosterIdeologyCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("LoadRoster: line %d: ideology: %v: %w", line, err, ErrInvalidRoster)
		}
		members = append(members, Member{Name: name, Rank: rank, Ideology: ideology})
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("LoadRoster: no members: %w", ErrInvalidRoster)
	}

	return members, nil
}
