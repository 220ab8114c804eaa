package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehmann314159/heimwerker/internal/models"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runIn(t, t.TempDir(), args...)
}

func runIn(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--data-dir", dataDir))
	err := cmd.Execute()
	return out.String(), err
}

func TestListGrouped(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Heimwerker Meister")
	assert.Contains(t, out, "🏠 Dachausbau  2 Videos")
	assert.Contains(t, out, "waende")
}

func TestListSearchEnglish(t *testing.T) {
	out, err := run(t, "list", "--lang", "en", "-q", "zzzz")
	require.NoError(t, err)
	assert.Contains(t, out, "DIY Master")
	assert.Contains(t, out, "No videos found")
	assert.Contains(t, out, "Try a different search term")
}

func TestListJSON(t *testing.T) {
	out, err := run(t, "list", "--json", "--q", "spachteln")
	require.NoError(t, err)

	var view models.View
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.True(t, view.Flat)
	require.Len(t, view.Cards, 2)
	assert.Equal(t, "DpEXwahrqSE", view.Cards[0].VideoID)
	assert.Equal(t, "3TPXAaTwtjQ", view.Cards[1].VideoID)
}

func TestListCategory(t *testing.T) {
	out, err := run(t, "list", "--category", "dachausbau")
	require.NoError(t, err)
	assert.Contains(t, out, "jcvno6SMrBM")
	assert.Contains(t, out, "Q0DrHFNzLiQ")
	assert.NotContains(t, out, "QGodfn8jV-c")
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "jcvno6SMrBM", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Watch on YouTube: https://www.youtube.com/watch?v=jcvno6SMrBM")
}

func TestShowUnknown(t *testing.T) {
	_, err := run(t, "show", "nope")
	assert.EqualError(t, err, `video "nope" not found`)
}

func TestUnsupportedLanguage(t *testing.T) {
	_, err := run(t, "list", "--lang", "fr")
	assert.Error(t, err)
}

func TestCategories(t *testing.T) {
	out, err := run(t, "categories", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "🏠 Attic Conversion")
	assert.Contains(t, out, "(2)")
}

func TestLanguageIsRememberedBetweenRuns(t *testing.T) {
	dir := t.TempDir()

	out, err := runIn(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Heimwerker Meister")

	_, err = runIn(t, dir, "categories", "--lang", "en")
	require.NoError(t, err)

	out, err = runIn(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "DIY Master")

	out, err = runIn(t, dir, "list", "--json", "-q", "ceiling")
	require.NoError(t, err)
	var view models.View
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Len(t, view.Cards, 5)
}

func TestUnsupportedLanguageIsNotSaved(t *testing.T) {
	dir := t.TempDir()
	_, err := runIn(t, dir, "list", "--lang", "fr")
	require.Error(t, err)

	out, err := runIn(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Heimwerker Meister")
}
