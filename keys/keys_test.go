package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKeyStringHasABinding(t *testing.T) {
	for str, name := range GlobalKeyStringsMap {
		binding, ok := GlobalkeyBindings[name]
		require.True(t, ok, "key string %q maps to %d which has no binding", str, name)
		assert.NotEmpty(t, binding.Keys(), "binding for %q has no key sequence", str)
	}
}

func TestKeyStringsMatchBindingSequences(t *testing.T) {
	for str, name := range GlobalKeyStringsMap {
		binding := GlobalkeyBindings[name]
		assert.Contains(t, binding.Keys(), str,
			"string %q is routed to a binding that does not list it", str)
	}
}

func TestBindingsHaveHelpText(t *testing.T) {
	for name, binding := range GlobalkeyBindings {
		help := binding.Help()
		assert.NotEmpty(t, help.Key, "binding %d has no help key", name)
		assert.NotEmpty(t, help.Desc, "binding %d has no help description", name)
	}
}
