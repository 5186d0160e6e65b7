// Package ingest cleans CSV exports and bulk-loads them into the football
// tables. It is the only code path that writes to the store.
package ingest

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/config"
)

// ErrUnknownTable is returned for a table outside the football schema.
var ErrUnknownTable = errors.New("unknown table")

// Kind says how a column is cleaned and typed.
type Kind int

const (
	Text    Kind = iota // trimmed, empty becomes NULL
	ID                  // integer reference, invalid becomes NULL
	Date                // calendar date, invalid drops the row
	Numeric             // number stored as text, invalid becomes NULL
)

// Column is one loadable column.
type Column struct {
	Name     string
	Kind     Kind
	Required bool // rows without a usable value are dropped
}

// TableSpec describes what a CSV for one table may contain.
type TableSpec struct {
	Name     string
	Columns  []Column
	Sequence string // serial column realigned after loading explicit ids
}

// Column returns the spec of a column by name.
func (t TableSpec) Column(name string) (Column, bool) {
	i := slices.IndexFunc(t.Columns, func(c Column) bool { return c.Name == name })
	if i < 0 {
		return Column{}, false
	}
	return t.Columns[i], true
}

var tables = map[string]TableSpec{
	config.TeamsTable: {
		Name:     config.TeamsTable,
		Sequence: "id_equipe",
		Columns: []Column{
			{Name: "id_equipe", Kind: ID},
			{Name: "nom_equipe", Kind: Text, Required: true},
		},
	},
	config.PlayersTable: {
		Name:     config.PlayersTable,
		Sequence: "id_joueur",
		Columns: []Column{
			{Name: "id_joueur", Kind: ID},
			{Name: "nom_joueur", Kind: Text, Required: true},
			{Name: "equipe_id", Kind: ID},
			{Name: "poste_principal", Kind: Text},
			{Name: "nationalite", Kind: Text},
		},
	},
	config.MatchesTable: {
		Name:     config.MatchesTable,
		Sequence: "id_match",
		Columns: []Column{
			{Name: "id_match", Kind: ID},
			{Name: "date_match", Kind: Date, Required: true},
			{Name: "equipe_domicile_id", Kind: ID, Required: true},
			{Name: "equipe_exterieur_id", Kind: ID, Required: true},
		},
	},
	config.ResultsTable: {
		Name:     config.ResultsTable,
		Sequence: "id_resultat",
		Columns: []Column{
			{Name: "id_resultat", Kind: ID},
			{Name: "match_id", Kind: ID, Required: true},
			{Name: "equipe_id", Kind: ID},
			{Name: "buts_marques", Kind: Numeric},
			{Name: "buts_contre", Kind: Numeric},
		},
	},
	config.PlayerStatsTable: {
		Name:     config.PlayerStatsTable,
		Sequence: "id_statistique_joueur",
		Columns: []Column{
			{Name: "id_statistique_joueur", Kind: ID},
			{Name: "joueur_id", Kind: ID, Required: true},
			{Name: "match_id", Kind: ID},
			{Name: "buts", Kind: Numeric},
			{Name: "passes_decisives", Kind: Numeric},
			{Name: "note", Kind: Numeric},
			{Name: "passes_reussies", Kind: Numeric},
		},
	},
}

// Lookup returns the spec of a loadable table.
func Lookup(table string) (TableSpec, error) {
	spec, ok := tables[table]
	if !ok {
		return TableSpec{}, fmt.Errorf("%q: %w (expected one of %s)",
			table, ErrUnknownTable, strings.Join(Tables(), ", "))
	}
	return spec, nil
}

// Tables lists the loadable tables in load order: referenced tables first.
func Tables() []string {
	return []string{
		config.TeamsTable,
		config.PlayersTable,
		config.MatchesTable,
		config.ResultsTable,
		config.PlayerStatsTable,
	}
}
