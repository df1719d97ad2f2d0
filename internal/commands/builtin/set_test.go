package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kvshell/pkg/kvtypes"
)

func TestSetCommand_Name(t *testing.T) {
	cmd := &SetCommand{}
	assert.Equal(t, "set", cmd.Name())
	assert.Equal(t, kvtypes.ParseModeKeyLiteral, cmd.ParseMode())
	assert.Equal(t, "set <key> <value>", cmd.Usage())
	assert.Equal(t, "set", cmd.HelpInfo().Command)
}

func TestSetCommand_Execute(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"string", "set key1 hello", `Set key 'key1' with value 'Text("hello")'`},
		{"integer", "set key2 42", "Set key 'key2' with value 'Integer(42)'"},
		{"boolean", "set key3 true", "Set key 'key3' with value 'Boolean(true)'"},
		{
			"map",
			`set key4 {"subkey1": "value1", "subkey2": 100}`,
			`Set key 'key4' with value '{"subkey1": Text("value1"), "subkey2": Integer(100)}'`,
		},
		{"list", "set l [1, 1, x]", `Set key 'l' with value '[Integer(1), Integer(1), Text("x")]'`},
		{"set", "set s <2, 1, 2>", "Set key 's' with value '{Integer(1), Integer(2)}'"},
		{"bare phrase", "set greeting hello   world", `Set key 'greeting' with value 'Text("hello   world")'`},
		{"quoted phrase", `set q "a, b"`, `Set key 'q' with value 'Text("a, b")'`},
		{"unclosed bracket is text", "set r [1, 2", `Set key 'r' with value 'Text("[1, 2")'`},
		{"digit underscores are text", "set a 1_000", `Set key 'a' with value 'Text("1_000")'`},
		{"hex float is text", "set b 0x1p3", `Set key 'b' with value 'Text("0x1p3")'`},
		{"upper hex float is text", "set c 0X1P-2", `Set key 'c' with value 'Text("0X1P-2")'`},
		{"unicode fold is not boolean", "set d fal\u017fe", "Set key 'd' with value 'Text(\"fal\u017fe\")'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			resp := run(env, tt.line)
			assert.Equal(t, tt.expected, resp.Text)
			assert.Equal(t, kvtypes.ResponseSuccess, resp.Kind)
			assert.Equal(t, 1, env.Store.Len())
		})
	}
}

func TestSetCommand_Overwrites(t *testing.T) {
	env := newTestEnv()
	run(env, "set k 1")
	run(env, "set k [2]")

	v, err := env.Store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "[Integer(2)]", v.String())
}

func TestSetCommand_UsageErrors(t *testing.T) {
	env := newTestEnv()

	both := run(env, "set")
	value := run(env, "set key1")

	assert.Equal(t, "Usage: set <key> <value> (missing key and value)", both.Text)
	assert.Equal(t, "Usage: set <key> <value> (missing value)", value.Text)
	assert.NotEqual(t, both.Text, value.Text)
	assert.Equal(t, kvtypes.ResponseError, both.Kind)
	assert.Equal(t, 0, env.Store.Len())

	err := requireKeyAndValue("set <key> <value>", "", "5")
	assert.EqualError(t, err, "Usage: set <key> <value> (missing key)")
}

func TestSetCommand_UnsupportedLeavesStoreUnchanged(t *testing.T) {
	env := newTestEnv()
	run(env, "set k 1")

	for _, line := range []string{"set k 3.14", "set k [1, [2]", "set k {a 1}", "set k <1,,2>"} {
		resp := run(env, line)
		assert.Equal(t, SupportedTypesMessage, resp.Text, line)
		assert.Equal(t, kvtypes.ResponseError, resp.Kind)
	}

	v, err := env.Store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "Integer(1)", v.String())
	assert.Equal(t, 1, env.Store.Len())
}

func TestSetCommand_UnsupportedOnNewKey(t *testing.T) {
	env := newTestEnv()
	resp := run(env, "set key5 3.14")
	assert.Equal(t, "Unsupported value type. Supported types: String, Integer, Boolean, Map, List, Set", resp.Text)
	assert.False(t, env.Store.Has("key5"))
}
