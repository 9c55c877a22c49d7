package cmd

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
)

func TestGetCategoryFromToolName(t *testing.T) {
	tests := []struct {
		name     string
		toolName string
		expected string
	}{
		{"scan tool", "labels_scan_expiring", "Label Tools"},
		{"apply tool", "labels_apply", "Label Tools"},
		{"auth tool", "google_get_auth_url", "Google Auth Tools"},
		{"unknown prefix", "something_else", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getCategoryFromToolName(tt.toolName))
		})
	}
}

func TestGroupToolsByCategory(t *testing.T) {
	tools := []mcp.Tool{
		{Name: "labels_scan_expiring"},
		{Name: "labels_get_label"},
		{Name: "google_save_auth_code"},
	}

	grouped := groupToolsByCategory(tools)

	assert.Len(t, grouped["Label Tools"], 2)
	assert.Len(t, grouped["Google Auth Tools"], 1)
}

func TestGenerateToolsMarkdown(t *testing.T) {
	tools := []mcp.Tool{
		{
			Name:        "labels_scan_expiring",
			Description: "Scan Drive for labeled documents",
		},
		{
			Name:        "google_get_auth_url",
			Description: "Get the OAuth URL",
		},
	}

	markdown := generateToolsMarkdown(tools)

	assert.True(t, strings.HasPrefix(markdown, "# MCP Tools Reference"))
	assert.Contains(t, markdown, "## Label Tools")
	assert.Contains(t, markdown, "## Google Auth Tools")
	assert.Contains(t, markdown, "### labels_scan_expiring")
	assert.Contains(t, markdown, "Scan Drive for labeled documents")
}

func TestContains(t *testing.T) {
	assert.True(t, contains([]string{"a", "b"}, "a"))
	assert.False(t, contains([]string{"a", "b"}, "c"))
	assert.False(t, contains(nil, "a"))
}
