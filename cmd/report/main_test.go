package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_PrintsReport(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dsn", "memory"})

	require.NoError(t, cmd.Execute())

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, float64(0), got["totalLikes"])
}

func TestRootCmd_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-d", "memory", "-o", path})

	require.NoError(t, cmd.Execute())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "\"blogs\": 0")
}

func TestRootCmd_UploadNeedsBucket(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-d", "memory", "--upload", "--bucket", ""})

	require.Error(t, cmd.Execute())
}

func TestRootCmd_MigrateFlag(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-d", "memory", "--migrate"})

	require.NoError(t, cmd.Execute())

	migrate, err := cmd.Flags().GetBool("migrate")
	require.NoError(t, err)
	assert.True(t, migrate)

	def := rootCmd().Flags().Lookup("migrate")
	require.NotNil(t, def)
	assert.Equal(t, "false", def.DefValue, "reports are read-only unless asked")
}
