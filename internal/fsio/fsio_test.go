package fsio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMissingFileReturnsIOError(t *testing.T) {
	d := NewMemory()

	_, err := d.Read("/missing.js")
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.Equal(t, "/missing.js", ioErr.Path)
}

func TestWriteCreatesParentDirectories(t *testing.T) {
	d := NewMemory()

	require.NoError(t, d.Write("/project/src/RelayEnvironment.ts", []byte("export default env;")))

	data, err := d.Read("/project/src/RelayEnvironment.ts")
	require.NoError(t, err)
	assert.Equal(t, "export default env;", string(data))

	ok, err := d.Exists("/project/src")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFindFileHonorsExtensionOrder(t *testing.T) {
	d := NewMemory()
	require.NoError(t, d.Write("/p/vite.config.js", []byte("js")))
	require.NoError(t, d.Write("/p/vite.config.ts", []byte("ts")))

	path, err := d.FindFile("/p", "vite.config", []string{".ts", ".js"})
	require.NoError(t, err)
	assert.Equal(t, "/p/vite.config.ts", path)

	path, err = d.FindFile("/p", "vite.config", []string{".mjs", ".js"})
	require.NoError(t, err)
	assert.Equal(t, "/p/vite.config.js", path)
}

func TestFindFileNoMatch(t *testing.T) {
	d := NewMemory()

	_, err := d.FindFile("/p", "rollup.config", []string{".js", ".mjs"})
	assert.ErrorIs(t, err, ErrNoMatch)
	var ioErr *IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestRecorderCapturesOldAndNewContent(t *testing.T) {
	inner := NewMemory()
	require.NoError(t, inner.Write("/p/a.js", []byte("old")))

	rec := NewRecorder(inner)
	require.NoError(t, rec.Write("/p/a.js", []byte("new")))
	require.NoError(t, rec.Write("/p/b.js", []byte("fresh")))

	require.Len(t, rec.Records, 2)
	assert.Equal(t, "old", string(rec.Records[0].Old))
	assert.Equal(t, "new", string(rec.Records[0].New))
	assert.Nil(t, rec.Records[1].Old)
	assert.Equal(t, "fresh", string(rec.Records[1].New))

	// Writes pass through: later readers see the new content.
	data, err := rec.Read("/p/a.js")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
