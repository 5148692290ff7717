package testutils

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/goto/pgsearch/core/searchable"
	"github.com/stretchr/testify/assert"
)

// AssertEqualDocument compares documents ignoring fields generated by the
// database.
func AssertEqualDocument(t *testing.T, expected, actual searchable.Document) {
	t.Helper()

	opts := cmpopts.IgnoreFields(searchable.Document{}, "ID", "CreatedAt", "UpdatedAt")
	if diff := cmp.Diff(expected, actual, opts, cmpopts.EquateEmpty()); diff != "" {
		msg := fmt.Sprintf(
			"Not equal:\n"+
				"expected:\n\t'%+v'\n"+
				"actual:\n\t'%+v'\n"+
				"diff (-expected +actual):\n%s",
			expected, actual, diff,
		)
		assert.Fail(t, msg)
	}
}
