package vbproject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVBP = `Type=Exe
Reference=*\G{00020430-0000-0000-C000-000000000046}#2.0#0#..\stdole2.tlb#OLE Automation
Module=Module1; Module1.bas
Class=Class1; Class1.cls
Form=Form1.frm
Designer=Designer1.dsr
UserControl=Ctl1.ctl
Startup="Form1"
ExeName32="Project1.exe"
`

func TestParseAggregatesProjectMembers(t *testing.T) {
	proj, err := Parse([]byte(sampleVBP))
	require.NoError(t, err)

	assert.Equal(t, "Exe", proj.Type)
	assert.Equal(t, `"Form1"`, proj.Properties["Startup"])

	require.Len(t, proj.References, 1)
	assert.Contains(t, proj.References[0].Raw, "stdole2.tlb")

	require.Len(t, proj.Modules, 1)
	assert.Equal(t, "Module1", proj.Modules[0].Name)
	assert.Equal(t, "Module1.bas", proj.Modules[0].Path)

	require.Len(t, proj.Classes, 1)
	assert.Equal(t, "Class1", proj.Classes[0].Name)

	require.Len(t, proj.Forms, 1)
	assert.Equal(t, "Form1.frm", proj.Forms[0].Path)

	require.Len(t, proj.Designers, 1)
	require.Len(t, proj.UserControls, 1)
}

func TestParseSkipsBlankAndSectionLines(t *testing.T) {
	proj, err := Parse([]byte("\n[MS Transaction Server]\nType=Exe\n\n"))
	require.NoError(t, err)
	assert.Equal(t, "Exe", proj.Type)
}

func TestParseRejectsMalformedModuleLine(t *testing.T) {
	_, err := Parse([]byte("Module=NoSemicolonHere\n"))
	assert.Error(t, err)
}
