package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, payload []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), payload, 0o644))
}

func TestListDiscoversAndSanitizesAssets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Hello_World.mp3", []byte("a"))
	writeFile(t, dir, "team notes.mp3", []byte("b"))
	writeFile(t, dir, "readme.txt", []byte("not audio"))

	catalog := NewLocalAssetCatalog(dir, NewZerologWrapper())

	assets, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 2)

	assert.Equal(t, "Hello-World", assets[0].BaseName)
	assert.Equal(t, "Hello_World.mp3", assets[0].FileName)
	assert.Equal(t, "mp3", assets[0].Format)
	assert.Equal(t, "team-notes", assets[1].BaseName)
}

func TestListSkipsCollidingSanitizedNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "my-talk.mp3", []byte("a"))
	writeFile(t, dir, "my_talk.mp3", []byte("b"))

	catalog := NewLocalAssetCatalog(dir, NewZerologWrapper())

	assets, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "my-talk", assets[0].BaseName)
}

func TestListSkipsUnusableNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "___.mp3", []byte("a"))

	catalog := NewLocalAssetCatalog(dir, NewZerologWrapper())

	assets, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestFetchReadsAssetBytes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sample.mp3", []byte("raw audio"))

	catalog := NewLocalAssetCatalog(dir, NewZerologWrapper())

	assets, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 1)

	payload, err := catalog.Fetch(context.Background(), assets[0])
	require.NoError(t, err)
	assert.Equal(t, []byte("raw audio"), payload)
}
