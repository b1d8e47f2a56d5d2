package issue_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/sift/pkg/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathString(t *testing.T) {
	t.Run("Root path renders empty", func(t *testing.T) {
		assert.Equal(t, "", issue.Path{}.String())
	})

	t.Run("Keys join with dots, indexes with brackets", func(t *testing.T) {
		p := issue.Path{issue.Key("profile"), issue.Key("tags"), issue.Index(2)}
		assert.Equal(t, "profile.tags[2]", p.String())
	})

	t.Run("Leading index has no separator", func(t *testing.T) {
		p := issue.Path{issue.Index(0), issue.Key("name")}
		assert.Equal(t, "[0].name", p.String())
	})
}

func TestPathPrepend(t *testing.T) {
	child := issue.Path{issue.Key("name")}
	rebased := child.Prepend(issue.Index(3))

	assert.Equal(t, "[3].name", rebased.String())
	// The child path must stay untouched: parents rebase copies, never the
	// slices their children still hold.
	assert.Equal(t, "name", child.String())
}

func TestSegmentJSON(t *testing.T) {
	p := issue.Path{issue.Key("tags"), issue.Index(2)}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `["tags", 2]`, string(data))

	var back issue.Path
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, p, back)
}

func TestErrorMessage(t *testing.T) {
	t.Run("Single issue", func(t *testing.T) {
		err := issue.NewError([]issue.Issue{{
			Code:    issue.CodeInvalidType,
			Path:    issue.Path{issue.Key("age")},
			Message: "expected int, received string",
		}})
		assert.Equal(t, "validation failed: age: expected int, received string", err.Error())
	})

	t.Run("Multiple issues keep recorded order", func(t *testing.T) {
		err := issue.NewError([]issue.Issue{
			{Code: issue.CodeRequired, Path: issue.Path{issue.Key("name")}, Message: "required"},
			{Code: issue.CodeTooBig, Path: issue.Path{issue.Key("age")}, Message: "must be at most 200"},
		})
		assert.Equal(t,
			"validation failed with 2 issues: name: required; age: must be at most 200",
			err.Error())
	})

	t.Run("Root issue renders bare message", func(t *testing.T) {
		err := issue.NewError([]issue.Issue{{Code: issue.CodeInvalidType, Message: "expected object, received string"}})
		assert.Equal(t, "validation failed: expected object, received string", err.Error())
	})
}

func TestErrorFlatten(t *testing.T) {
	err := issue.NewError([]issue.Issue{
		{Path: issue.Path{issue.Key("name")}, Message: "required"},
		{Path: issue.Path{issue.Key("tags"), issue.Index(0)}, Message: "expected string, received number"},
		{Path: issue.Path{issue.Key("name")}, Message: "must be at least 3 characters"},
		{Message: "expected object, received nil"},
	})

	flat := err.Flatten()
	assert.Equal(t, []string{"required", "must be at least 3 characters"}, flat["name"])
	assert.Equal(t, []string{"expected string, received number"}, flat["tags[0]"])
	assert.Equal(t, []string{"expected object, received nil"}, flat[""])
}
