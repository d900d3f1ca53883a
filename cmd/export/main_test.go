package main

import (
	"bytes"
	"testing"

	"booksite/booksite"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputName(t *testing.T) {
	assert.Equal(t, "rforge-r-project-org.html", outputName("rforge.r-project.org"))
	assert.Equal(t, "localhost.html", outputName("localhost"))
	assert.Equal(t, "index.html", outputName(""))
}

func TestExport(t *testing.T) {
	fs := afero.NewMemMapFs()
	config := booksite.DefaultConfig()

	t.Run("default name", func(t *testing.T) {
		name, err := export(fs, config, "rforge.r-project.org", "")
		require.NoError(t, err)
		assert.Equal(t, "rforge-r-project-org.html", name)

		data, err := afero.ReadFile(fs, name)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte(booksite.XMLDeclaration)))

		want, err := booksite.RenderBytes(config, config.Host("rforge.r-project.org"))
		require.NoError(t, err)
		assert.Equal(t, want, data)
	})

	t.Run("explicit name", func(t *testing.T) {
		name, err := export(fs, config, "localhost", "index.html")
		require.NoError(t, err)
		assert.Equal(t, "index.html", name)

		exists, err := afero.Exists(fs, "index.html")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}
