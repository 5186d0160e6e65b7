package query

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sqlPattern compiles a quoted SQL regex literal. The patterns only use
// syntax shared by POSIX and RE2.
func sqlPattern(t *testing.T, literal string) *regexp.Regexp {
	t.Helper()
	return regexp.MustCompile(strings.Trim(literal, "'"))
}

func TestIntPattern_BoundsIntegerRange(t *testing.T) {
	re := sqlPattern(t, intPattern)

	for _, s := range []string{"0", "2", "-1", "+3", "2.0", ".5", "7.", "999999999", "999999999.49", "000000000012"} {
		assert.True(t, re.MatchString(s), s)
	}
	for _, s := range []string{"", "n/a", "1e3", "7,5", "1000000000", "99999999999", "-2147483649", "1." + strings.Repeat("0", 101)} {
		assert.False(t, re.MatchString(s), s)
	}
}

func TestDecimalPattern_BoundsMagnitude(t *testing.T) {
	re := sqlPattern(t, decimalPattern)

	for _, s := range []string{"7.5", "6", "999999999999999.99", "-0.25"} {
		assert.True(t, re.MatchString(s), s)
	}
	for _, s := range []string{"bad", "NaN", "Infinity", "1" + strings.Repeat("0", 15), "1" + strings.Repeat("0", 400)} {
		assert.False(t, re.MatchString(s), s)
	}
}

func TestStatements_UseBoundedCoercion(t *testing.T) {
	for name, sql := range Statements() {
		if name == StmtAllTeamNames {
			continue
		}
		assert.NotContains(t, sql, "double precision END", name)
	}
	assert.Contains(t, playerStatsSQL, "ROUND(AVG(a.rating), 2)")
}
