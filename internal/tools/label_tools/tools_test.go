package label_tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/labelguard/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		LabelID:           "cfg-label",
		ExpirationFieldID: "cfg-expiry",
		SignatoryFieldID:  "cfg-signatory",
		FolderID:          "cfg-folder",
		DaysThreshold:     90,
	}
}

func TestParseScanArgs_Defaults(t *testing.T) {
	sa, err := parseScanArgs(map[string]interface{}{}, testConfig())
	require.NoError(t, err)

	assert.Equal(t, "default", sa.account)
	assert.Equal(t, "cfg-label", sa.labelID)
	assert.Equal(t, "cfg-folder", sa.folderID)
	assert.Equal(t, "cfg-expiry", sa.expirationFieldID)
	assert.Equal(t, "cfg-signatory", sa.signatoryFieldID)
	assert.Equal(t, 90, sa.days)
}

func TestParseScanArgs_ArgumentsWin(t *testing.T) {
	args := map[string]interface{}{
		"account":           "work",
		"labelId":           "arg-label",
		"folderId":          "https://drive.google.com/drive/folders/folder123",
		"expirationFieldId": "arg-expiry",
		"days":              float64(30),
	}

	sa, err := parseScanArgs(args, testConfig())
	require.NoError(t, err)

	assert.Equal(t, "work", sa.account)
	assert.Equal(t, "arg-label", sa.labelID)
	// Folder URLs are reduced to the bare ID
	assert.Equal(t, "folder123", sa.folderID)
	assert.Equal(t, "arg-expiry", sa.expirationFieldID)
	assert.Equal(t, 30, sa.days)
}

func TestParseScanArgs_MissingRequired(t *testing.T) {
	cfg := &config.Config{DaysThreshold: 90}

	_, err := parseScanArgs(map[string]interface{}{}, cfg)
	assert.Error(t, err)

	_, err = parseScanArgs(map[string]interface{}{"labelId": "l"}, cfg)
	assert.Error(t, err)

	_, err = parseScanArgs(map[string]interface{}{"labelId": "l", "expirationFieldId": "e"}, cfg)
	assert.NoError(t, err)
}

func TestParseScanArgs_NegativeDays(t *testing.T) {
	_, err := parseScanArgs(map[string]interface{}{"days": float64(-1)}, testConfig())
	assert.Error(t, err)
}

func TestStringArg(t *testing.T) {
	args := map[string]interface{}{"set": "value", "empty": "", "notString": 42}

	assert.Equal(t, "value", stringArg(args, "set", "def"))
	assert.Equal(t, "def", stringArg(args, "empty", "def"))
	assert.Equal(t, "def", stringArg(args, "notString", "def"))
	assert.Equal(t, "def", stringArg(args, "missing", "def"))
}

func TestIntArg(t *testing.T) {
	args := map[string]interface{}{"n": float64(7), "notNumber": "7"}

	assert.Equal(t, 7, intArg(args, "n", 1))
	assert.Equal(t, 1, intArg(args, "notNumber", 1))
	assert.Equal(t, 1, intArg(args, "missing", 1))
}

func TestGetAccountFromArgs(t *testing.T) {
	assert.Equal(t, "default", getAccountFromArgs(map[string]interface{}{}))
	assert.Equal(t, "work", getAccountFromArgs(map[string]interface{}{"account": "work"}))
	assert.Equal(t, "default", getAccountFromArgs(map[string]interface{}{"account": ""}))
}
