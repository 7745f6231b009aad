//go:build !integration

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/savings-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 16, c.Size())
	assert.Equal(t, 3, c.DefaultActiveCount())
	assert.True(t, c.Has(1))
	assert.False(t, c.Has(999))
}

func TestCatalog_ToolsReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tools := c.Tools()
	for i := range tools {
		tools[i].Checked = true
	}

	assert.Equal(t, 3, c.DefaultActiveCount())
	assert.Equal(t, 3, model.CountChecked(c.Tools()))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		expectedErr error
		expectedLen int
	}{
		{
			name: "valid catalog",
			doc: `
tools:
  - {id: 1, name: Slack, img: a.svg, checked: true}
  - {id: 2, name: Zoom, img: b.svg}
`,
			expectedLen: 2,
		},
		{
			name:        "empty catalog",
			doc:         "tools: []",
			expectedErr: ErrEmptyCatalog,
		},
		{
			name: "duplicate id",
			doc: `
tools:
  - {id: 1, name: Slack}
  - {id: 1, name: Zoom}
`,
			expectedErr: ErrDuplicateID,
		},
		{
			name: "zero id",
			doc: `
tools:
  - {id: 0, name: Slack}
`,
			expectedErr: ErrInvalidTool,
		},
		{
			name: "missing name",
			doc: `
tools:
  - {id: 3}
`,
			expectedErr: ErrInvalidTool,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.doc))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLen, c.Size())
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("tools: [unterminated"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses embedded catalog", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 16, c.Size())
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tools.yaml")
		doc := "tools:\n  - {id: 7, name: Notion, checked: true}\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Size())
		assert.True(t, c.Has(7))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
