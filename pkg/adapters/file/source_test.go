package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/medcalc/pkg/adapters/file"
	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestSource_Load(t *testing.T) {
	dir := t.TempDir()
	paths := write(t, dir, "calc_path.json", `{"QTc Bazett Calculator": {"Calculator ID": 11, "File Path": "calc/qtc.py"}}`)
	fields := write(t, dir, "name_to_python.json", `{"11": {"Explanation Function": "qtc_explanation"}}`)

	meta, err := file.New(paths, fields).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, meta.PathIndex.Len())
	assert.Equal(t, 1, meta.FieldIndex.Len())
}

func TestSource_Missing(t *testing.T) {
	dir := t.TempDir()
	fields := write(t, dir, "name_to_python.json", `{}`)

	_, err := file.New(filepath.Join(dir, "absent.json"), fields).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMetadataNotFound)
}

func TestSource_Malformed(t *testing.T) {
	dir := t.TempDir()
	paths := write(t, dir, "calc_path.json", `{}`)
	fields := write(t, dir, "name_to_python.json", `{"11": `)

	_, err := file.New(paths, fields).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedMetadata)
}
