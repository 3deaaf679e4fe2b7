package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUploadName(t *testing.T) {
	assert.True(t, ValidUploadName("tesis.pdf"))
	assert.True(t, ValidUploadName("LIBRO.PDF"))
	assert.True(t, ValidUploadName("novela.epub"))
	assert.False(t, ValidUploadName("malware.exe"))
	assert.False(t, ValidUploadName("notas.txt"))
	assert.False(t, ValidUploadName("sin_extension"))
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "tesis.pdf", SafeFilename("/tmp/../tesis.pdf"))
	assert.Equal(t, "archivo", SafeFilename(""))
	assert.Equal(t, "archivo", SafeFilename("."))
	assert.NotContains(t, SafeFilename("a/../../b.pdf"), "..")
}
