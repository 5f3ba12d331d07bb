package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koildeeee/HospitalManagerApp/internal/platform/store"
)

func testApp(fs afero.Fs) (*app, *bytes.Buffer) {
	var logs bytes.Buffer
	return &app{fs: fs, paths: store.DefaultPaths(), logOut: &logs}, &logs
}

func execute(t *testing.T, a *app, stdin string, args ...string) string {
	t.Helper()
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "info")

	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRoot_DefaultsToMenu(t *testing.T) {
	a, _ := testApp(afero.NewMemMapFs())

	out := execute(t, a, "q\n")

	assert.Contains(t, out, "1 -> check in patient")
	assert.Contains(t, out, "Thank you for using MyHospitalManager!")
}

func TestMenu_CreatesDataDirectoryForFirstSave(t *testing.T) {
	fs := afero.NewMemMapFs()
	a, logs := testApp(fs)

	out := execute(t, a, "1\nJane Doe\n12\n11\nq\n", "menu")

	assert.Contains(t, out, "Saved list of patients to ./data/patients.json")
	exists, err := afero.DirExists(fs, store.DataDir)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Contains(t, logs.String(), `"collection":"patients"`)
}

func TestInspect(t *testing.T) {
	fs := afero.NewMemMapFs()
	a, _ := testApp(fs)
	execute(t, a, "1\nJane Doe\n12\n1\nJohn Roe\n7\n11\nq\n", "menu")
	require.NoError(t, fs.Remove(store.AppointmentsPath))

	out := execute(t, a, "", "inspect")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "medical records"))
	assert.True(t, strings.HasSuffix(lines[0], " 0"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], " 2"), lines[1])
	assert.Contains(t, lines[2], "failed: file not found")
}

func TestVersion(t *testing.T) {
	a, _ := testApp(afero.NewMemMapFs())
	out := execute(t, a, "", "version")
	assert.Equal(t, "hospital-manager dev\n", out)
}
