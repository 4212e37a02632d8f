package vb6file

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindForExtension(t *testing.T) {
	cases := map[string]Kind{
		"Module1.bas":  KindModule,
		"Class1.CLS":   KindClass,
		"Form1.frm":    KindForm,
		"Ctl1.ctl":     KindControl,
		"Des1.dsr":     KindDesigner,
		"Project1.vbp": KindProject,
		"README.md":    KindUnknown,
	}
	for name, want := range cases {
		assert.Equal(t, want, KindForExtension(name), name)
	}
}

func TestHasHeader(t *testing.T) {
	assert.False(t, KindModule.HasHeader())
	assert.True(t, KindClass.HasHeader())
	assert.True(t, KindForm.HasHeader())
	assert.False(t, KindProject.HasHeader())
}

func TestParseRejectsProjectFiles(t *testing.T) {
	_, _, err := Parse("p.vbp", []byte("Type=Exe\n"))
	assert.Error(t, err)
}

func TestParseDelegatesToCoreParser(t *testing.T) {
	tree, failures, err := Parse("m.bas", []byte("x = 1\n"))
	require.NoError(t, err)
	require.NotNil(t, tree)
	assert.Empty(t, failures)
	assert.Equal(t, "x = 1\n", tree.Text())
}

func TestParseHeaderVersion(t *testing.T) {
	v, err := ParseHeaderVersion("VERSION 1.0 CLASS")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Major)
	assert.Equal(t, 0, v.Minor)
	assert.True(t, v.ClassAttribute)
	assert.Equal(t, "1.0", v.String())

	v2, err := ParseHeaderVersion("VERSION 5.00")
	require.NoError(t, err)
	assert.False(t, v2.ClassAttribute)
	assert.Equal(t, 5, v2.Major)
	assert.Equal(t, 0, v2.Minor)
}

func TestParseHeaderVersionRejectsMalformed(t *testing.T) {
	_, err := ParseHeaderVersion("VERSION abc")
	assert.Error(t, err)

	_, err = ParseHeaderVersion("Attribute VB_Name = \"Foo\"")
	assert.Error(t, err)
}

func TestCompareOrdersHeaderVersions(t *testing.T) {
	a, _ := ParseHeaderVersion("VERSION 1.0")
	b, _ := ParseHeaderVersion("VERSION 1.5")
	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, a))
}
