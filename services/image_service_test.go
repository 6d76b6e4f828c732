package services

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func fileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestImageStore_SaveUploadAndRemove(t *testing.T) {
	store := NewImageStore(filepath.Join(t.TempDir(), "uploads"))
	png, _ := base64.StdEncoding.DecodeString(tinyPNG)

	name, err := store.SaveUpload(fileHeader(t, "Gaun Pengantin.PNG", png))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.NotContains(t, name, "/")

	_, err = os.Stat(filepath.Join(store.Dir, name))
	require.NoError(t, err)

	store.Remove(name, "", "missing.png")
	_, err = os.Stat(filepath.Join(store.Dir, name))
	assert.True(t, os.IsNotExist(err))
}

func TestImageStore_RejectsUnknownExtension(t *testing.T) {
	store := NewImageStore(t.TempDir())

	_, err := store.SaveUpload(fileHeader(t, "shell.php", []byte("<?php")))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestImageStore_SaveBase64DataURI(t *testing.T) {
	store := NewImageStore(t.TempDir())

	name, err := store.SaveBase64("data:image/png;base64," + tinyPNG)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))

	_, err = store.SaveBase64(base64.StdEncoding.EncodeToString([]byte("plain text")))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestImageStore_RemoveStaysInsideDir(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(root, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0644))

	store := NewImageStore(filepath.Join(root, "uploads"))
	store.Remove("../keep.txt")

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}
