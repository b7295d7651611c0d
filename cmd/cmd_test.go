package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/typedrills/internal/log"
)

// run executes the command tree against an empty in-memory filesystem and
// returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	prev := fs
	fs = afero.NewMemMapFs()
	t.Cleanup(func() { fs = prev })

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--no-color"}, args...))

	err := root.Execute()
	log.SetOutput(&bytes.Buffer{}) // keep later tests quiet
	return out.String(), err
}

func TestStackScenario(t *testing.T) {
	out, err := run(t, "stack", "1", "2", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Stack[int] (LIFO)")
	assert.Contains(t, out, "push 3  len=3")
	assert.Contains(t, out, "pop  → 3  len=2")
	assert.Contains(t, out, "pop  → 1  len=0")
	assert.Contains(t, out, "pop  → (empty)")
}

func TestStackDefaultItems(t *testing.T) {
	out, err := run(t, "stack")
	require.NoError(t, err)
	assert.Contains(t, out, "Stack[int] (LIFO)")
	assert.Contains(t, out, "push 3  len=3")
}

func TestStackStringsJSON(t *testing.T) {
	out, err := run(t, "--json", "stack", "--peek", "hello", "world")
	require.NoError(t, err)

	var trace struct {
		Pushed []string `json:"pushed"`
		Peeked []string `json:"peeked"`
		Popped []string `json:"popped"`
		Empty  bool     `json:"empty"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &trace))
	assert.Equal(t, []string{"hello", "world"}, trace.Pushed)
	assert.Equal(t, []string{"world", "hello"}, trace.Peeked)
	assert.Equal(t, []string{"world", "hello"}, trace.Popped)
	assert.True(t, trace.Empty)
}

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "user", args: []string{"find", "users", "1"}, want: "ID: 1, Name: Alice, Email: alice@example.com"},
		{name: "product", args: []string{"find", "products", "102"}, want: "Mouse: ¥2980"},
		{name: "task", args: []string{"find", "tasks", "2"}, want: "#2 Prepare meeting [completed]"},
		{name: "miss is not an error", args: []string{"find", "users", "99"}, want: "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestFindJSONMiss(t *testing.T) {
	out, err := run(t, "--json", "find", "products", "7")
	require.NoError(t, err)
	assert.JSONEq(t, "null", out)
}

func TestFindUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"find", "users"},
		{"find", "pets", "1"},
		{"find", "users", "two"},
	} {
		_, err := run(t, args...)
		assert.ErrorIs(t, err, errUsage, "%v", args)
	}
}

func TestResponse(t *testing.T) {
	out, err := run(t, "response", "users", "2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":{"id":2,"name":"Bob","email":"bob@example.com","age":30}}`, out)

	out, err = run(t, "response", "users", "99")
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"User not found"}`, out)
}

func TestFirstLast(t *testing.T) {
	out, err := run(t, "first-last")
	require.NoError(t, err)
	assert.Contains(t, out, "numbers  first=1 last=5")
	assert.Contains(t, out, "strings  first=apple last=orange")
	assert.Contains(t, out, "empty    first=none last=none")
}

func TestRecords(t *testing.T) {
	out, err := run(t, "records")
	require.NoError(t, err)
	assert.Contains(t, out, "Laptop: ¥89800")
	assert.NotContains(t, out, "Mouse")
	assert.Contains(t, out, "Prepare meeting")
	assert.Contains(t, out, "Taro <taro@example.com> 123-4567-890")
}

func TestCalc(t *testing.T) {
	out, err := run(t, "calc", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "c.Add(5)              = 15")
	assert.Contains(t, out, "bound(5)              = 15")
	assert.Contains(t, out, "calculator.Add(c, 5)  = 25")

	_, err = run(t, "calc", "five")
	assert.ErrorIs(t, err, errUsage)
}

func TestConfigWriteAndShow(t *testing.T) {
	prev := fs
	mem := afero.NewMemMapFs()
	fs = mem
	t.Cleanup(func() { fs = prev })

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"config", "write", "/tmp/drills/drills.toml"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "wrote /tmp/drills/drills.toml")

	ok, err := afero.Exists(mem, "/tmp/drills/drills.toml")
	require.NoError(t, err)
	assert.True(t, ok)

	out.Reset()
	root = NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--config", "/tmp/drills/drills.toml", "--json", "config", "show"})
	require.NoError(t, root.Execute())

	var eff map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &eff))
	assert.Equal(t, "warn", eff["log.level"])
	assert.Equal(t, true, eff["output.json"])
}
