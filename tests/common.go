package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBotToken is a syntactically valid bot token for fake Bot API servers.
var TestBotToken = "123456789:" + strings.Repeat("T", 35)

// WriteResponsesConfig writes a responses configuration document to a temp dir and returns its path.
func WriteResponsesConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}
