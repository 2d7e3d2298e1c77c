package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/jamfrolesync/internal/extract"
	"github.com/hyperifyio/jamfrolesync/internal/schema"
)

func TestWritePDF(t *testing.T) {
	classic := []extract.ClassicRow{
		{Endpoint: "/computers", Operation: "GET", Privileges: []string{"Read - Computers"}},
	}
	s := schema.Build(classic, nil, "p", "c", time.Now())

	path := filepath.Join(t.TempDir(), "catalog.pdf")
	require.NoError(t, WritePDF(s, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
