package inquire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswers(t *testing.T) {
	answers := Answers{
		{Name: "name", Value: "@scope/my-lib"},
		{Name: "packageName", Value: "my-lib"},
		{Name: "git", Value: false},
		{Name: "nothing", Value: nil},
	}

	v, ok := answers.Lookup("packageName")
	assert.True(t, ok)
	assert.Equal(t, "my-lib", v)

	_, ok = answers.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, "false", answers.String("git"))
	assert.Equal(t, "", answers.String("nothing"))
	assert.Equal(t, "", answers.String("missing"))
	assert.True(t, answers.Has("nothing"))

	second, ok := answers.At(1)
	assert.True(t, ok)
	assert.Equal(t, "packageName", second.Name)

	_, ok = answers.At(4)
	assert.False(t, ok)

	more := answers.With("librarianVersion", "1.0.0")
	assert.Len(t, answers, 4)
	assert.Len(t, more, 5)
	assert.Equal(t, "1.0.0", more.String("librarianVersion"))
}
