package ast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string, d Dialect) *Tree {
	t.Helper()
	tree, err := Parse(context.Background(), "fixture", []byte(src), d)
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

func TestDialectForFile(t *testing.T) {
	cases := map[string]Dialect{
		"vite.config.ts":  DialectTypeScript,
		"src/main.tsx":    DialectTSX,
		"next.config.js":  DialectJavaScript,
		"src/index.jsx":   DialectJavaScript,
		"rollup.config.mjs": DialectJavaScript,
		"env.mts":         DialectTypeScript,
	}
	for path, want := range cases {
		assert.Equal(t, want, DialectForFile(path), path)
	}
}

func TestParseValidSource(t *testing.T) {
	tree := mustParse(t, `export default { plugins: [] };`, DialectJavaScript)
	assert.Equal(t, KindProgram, tree.Root().Type())
}

func TestParseJSXWithTSXDialect(t *testing.T) {
	src := `const App = (): JSX.Element => { return <div className="x">hi</div>; };`
	tree := mustParse(t, src, DialectTSX)
	assert.False(t, tree.Root().HasError())
}

func TestParseErrorReportsPosition(t *testing.T) {
	src := "const a = 1;\nconst b = ;\n"
	_, err := Parse(context.Background(), "broken.js", []byte(src), DialectJavaScript)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "broken.js", perr.Path)
	assert.Equal(t, 2, perr.Line)
	assert.Contains(t, perr.Error(), "broken.js")
}

func TestTextCoversExactNodeBytes(t *testing.T) {
	tree := mustParse(t, `module.exports = { a: 1 };`, DialectJavaScript)
	stmt := tree.Root().NamedChild(0)
	assert.Equal(t, "module.exports = { a: 1 };", tree.Text(stmt))
}

func TestApplyPreservesUntouchedBytes(t *testing.T) {
	src := []byte("aaa bbb ccc")

	out, err := Apply(src, []Edit{Insert(4, "XX ")})
	require.NoError(t, err)
	assert.Equal(t, "aaa XX bbb ccc", string(out))

	out, err = Apply(src, []Edit{
		{Start: 4, End: 7, Text: "B"},
		Insert(0, ">"),
	})
	require.NoError(t, err)
	assert.Equal(t, ">aaa B ccc", string(out))
}

func TestApplyNoEditsReturnsInput(t *testing.T) {
	src := []byte("unchanged")
	out, err := Apply(src, nil)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestApplyRejectsOverlap(t *testing.T) {
	src := []byte("0123456789")
	_, err := Apply(src, []Edit{
		{Start: 2, End: 6, Text: "x"},
		{Start: 4, End: 8, Text: "y"},
	})
	assert.Error(t, err)
}

func TestApplyRejectsOutOfBounds(t *testing.T) {
	_, err := Apply([]byte("ab"), []Edit{{Start: 1, End: 9, Text: "x"}})
	assert.Error(t, err)
}

func TestStringValue(t *testing.T) {
	tree := mustParse(t, `import x from "mod"; import y from 'other';`, DialectJavaScript)
	root := tree.Root()

	first := root.NamedChild(0).ChildByFieldName("source")
	require.NotNil(t, first)
	assert.Equal(t, "mod", tree.StringValue(first))

	second := root.NamedChild(1).ChildByFieldName("source")
	require.NotNil(t, second)
	assert.Equal(t, "other", tree.StringValue(second))
}

func TestSameReference(t *testing.T) {
	tree := mustParse(t, `const arr = [relay, react(), other.thing];`, DialectJavaScript)
	decl := tree.Root().NamedChild(0).NamedChild(0)
	arr := decl.ChildByFieldName("value")
	require.NotNil(t, arr)
	require.Equal(t, KindArray, arr.Type())

	assert.True(t, tree.SameReference(arr.NamedChild(0), "relay"))
	assert.True(t, tree.SameReference(arr.NamedChild(0), "relay()"))
	assert.True(t, tree.SameReference(arr.NamedChild(1), "react"))
	assert.False(t, tree.SameReference(arr.NamedChild(1), "relay"))
	assert.False(t, tree.SameReference(arr.NamedChild(2), "other"))
}
