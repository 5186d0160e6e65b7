// Package filter binds a user-selected team name to query parameters.
package filter

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// AllTeams is the choice offered next to the team names meaning "no filter".
const AllTeams = "All Teams"

// ErrUnknownTeam is returned when the selected name is not a known team.
var ErrUnknownTeam = errors.New("unknown team")

// InvalidFilterError reports a rejected selection. Callers log it and fall
// back to the unfiltered view.
type InvalidFilterError struct {
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("filter %q: %v", e.Value, ErrUnknownTeam)
}

func (e *InvalidFilterError) Unwrap() error { return ErrUnknownTeam }

// Team is either no filter or a single team name. The zero value is no filter.
type Team struct {
	name  string
	bound bool
}

// NoFilter matches every team.
func NoFilter() Team { return Team{} }

// ByTeam restricts a view to one team.
func ByTeam(name string) Team { return Team{name: name, bound: true} }

// Name returns the team name and whether a filter is set.
func (t Team) Name() (string, bool) { return t.name, t.bound }

// IsSet reports whether the view is restricted.
func (t Team) IsSet() bool { return t.bound }

// Arg is the statement parameter: NULL for no filter.
func (t Team) Arg() pgtype.Text {
	return pgtype.Text{String: t.name, Valid: t.bound}
}

func (t Team) String() string {
	if !t.bound {
		return AllTeams
	}
	return t.name
}

// Bind turns a selection into a filter. An empty selection or AllTeams gives
// NoFilter. A name outside known also gives NoFilter, with an
// *InvalidFilterError, so a stale selection never runs an always-empty query.
func Bind(selected string, known []string) (Team, error) {
	selected = strings.TrimSpace(selected)
	if selected == "" || selected == AllTeams {
		return NoFilter(), nil
	}
	if !slices.Contains(known, selected) {
		return NoFilter(), &InvalidFilterError{Value: selected}
	}
	return ByTeam(selected), nil
}
