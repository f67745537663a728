package loo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pssmlab/loorun/pkg/loo"
	"github.com/pssmlab/loorun/pkg/loo/model"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "CDC7.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestExtractIdentifiers(t *testing.T) {
	t.Parallel()

	path := writeArtifact(t, "ID SCORE\nA 0.9\nB 0.5\n")
	ids, err := loo.ExtractIdentifiers(path)
	require.NoError(t, err)
	assert.Equal(t, model.IdentifierList{"A", "B"}, ids)
}

func TestExtractIdentifiersSkipsHeaderOnly(t *testing.T) {
	t.Parallel()

	path := writeArtifact(t, "ID SCORE\n")
	ids, err := loo.ExtractIdentifiers(path)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestExtractIdentifiersMissing(t *testing.T) {
	t.Parallel()

	_, err := loo.ExtractIdentifiers(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, loo.ErrArtifactMissing)
}

func TestExtractIdentifiersEmptyFile(t *testing.T) {
	t.Parallel()

	path := writeArtifact(t, "")
	_, err := loo.ExtractIdentifiers(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, loo.ErrArtifactMalformed)
}

func TestExtractIdentifiersMalformed(t *testing.T) {
	t.Parallel()

	path := writeArtifact(t, "ID SCORE\nA 0.9\n\nB 0.5\n")
	_, err := loo.ExtractIdentifiers(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, loo.ErrArtifactMalformed)
}

func TestExtractIdentifiersFirstFieldOnly(t *testing.T) {
	t.Parallel()

	path := writeArtifact(t, "ID SCORE RANK\nSDERRSLLSV 0.91 1\nSDERRALLSV 0.44 2\n")
	ids, err := loo.ExtractIdentifiers(path)
	require.NoError(t, err)
	assert.Equal(t, model.IdentifierList{"SDERRSLLSV", "SDERRALLSV"}, ids)
}
