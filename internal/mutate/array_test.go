package mutate

import (
	"testing"

	"relaywire/internal/ast"
	"relaywire/internal/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The canonical scenario: an empty plugins array gains the plugin, and a
// second application is a no-op.
func TestUpsertArrayElementEmptyArray(t *testing.T) {
	src := `export default { plugins: [] };`
	tree := parseFixture(t, src, ast.DialectJavaScript)

	res, err := UpsertArrayElement(tree, exportedObject(t, tree), "plugins", "relay")
	require.NoError(t, err)
	once := applyResult(t, src, res)
	assert.Equal(t, `export default { plugins: [relay] };`, once)

	again := parseFixture(t, once, ast.DialectJavaScript)
	res, err = UpsertArrayElement(again, exportedObject(t, again), "plugins", "relay")
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.Contains(t, res.Reason, "relay")
}

func TestUpsertArrayElementAppendsAfterExisting(t *testing.T) {
	src := `export default { plugins: [react()] };`
	tree := parseFixture(t, src, ast.DialectJavaScript)

	res, err := UpsertArrayElement(tree, exportedObject(t, tree), "plugins", "relay")
	require.NoError(t, err)
	assert.Equal(t, `export default { plugins: [react(), relay] };`, applyResult(t, src, res))
}

func TestUpsertArrayElementMultiline(t *testing.T) {
	src := `export default {
  plugins: [
    resolve(),
  ],
};
`
	tree := parseFixture(t, src, ast.DialectJavaScript)

	res, err := UpsertArrayElement(tree, exportedObject(t, tree), "plugins", "relay()")
	require.NoError(t, err)
	want := `export default {
  plugins: [
    resolve(),
    relay(),
  ],
};
`
	assert.Equal(t, want, applyResult(t, src, res))
}

// A call expression and a bare identifier reduce to the same binding name, so
// the plugin cannot be inserted twice under a different call shape.
func TestUpsertArrayElementCallMatchesIdentifier(t *testing.T) {
	src := `export default { plugins: [relay] };`
	tree := parseFixture(t, src, ast.DialectJavaScript)

	res, err := UpsertArrayElement(tree, exportedObject(t, tree), "plugins", "relay()")
	require.NoError(t, err)
	assert.False(t, res.Applied)
}

func TestUpsertArrayElementCreatesMissingProperty(t *testing.T) {
	src := `export default { input: "src/main.js" };`
	tree := parseFixture(t, src, ast.DialectJavaScript)

	res, err := UpsertArrayElement(tree, exportedObject(t, tree), "plugins", "relay()")
	require.NoError(t, err)
	assert.Equal(t, `export default { input: "src/main.js", plugins: [relay()] };`, applyResult(t, src, res))
}

func TestUpsertArrayElementNonArrayProperty(t *testing.T) {
	src := `export default { plugins: makePlugins() };`
	tree := parseFixture(t, src, ast.DialectJavaScript)

	_, err := UpsertArrayElement(tree, exportedObject(t, tree), "plugins", "relay")
	var shapeErr *match.UnsupportedShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Contains(t, shapeErr.Error(), "array literal")
}
