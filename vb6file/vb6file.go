// Package vb6file implements file-by-extension entry points: picking a
// parse strategy by file extension, and normalizing a .cls/.frm header's
// "VERSION 1.0 CLASS" line to a comparable version.
//
// golang.org/x/mod/semver requires a "v" prefix and a dotted
// MAJOR.MINOR(.PATCH) shape, so a bare VB6 "1.0" header is rewritten to
// "v1.0.0" before being handed to semver.Compare/semver.IsValid.
package vb6file

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	vb6parse "github.com/scriptandcompile/vb6parse-sub002"
)

// Kind classifies a VB6 source artifact by its file extension.
type Kind string

const (
	KindModule     Kind = "bas"     // standard module
	KindClass      Kind = "cls"     // class module
	KindForm       Kind = "frm"     // form
	KindControl    Kind = "ctl"     // user control
	KindDesigner   Kind = "dsr"     // designer
	KindProject    Kind = "vbp"     // project file (handled by vbproject, not here)
	KindUnknown    Kind = "unknown"
)

// KindForExtension maps a file name's extension to its Kind. The match is
// case-insensitive, matching VB6's case-insensitive file system
// conventions on Windows.
func KindForExtension(fileName string) Kind {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	switch ext {
	case "bas":
		return KindModule
	case "cls":
		return KindClass
	case "frm":
		return KindForm
	case "ctl":
		return KindControl
	case "dsr":
		return KindDesigner
	case "vbp":
		return KindProject
	default:
		return KindUnknown
	}
}

// HasHeader reports whether a Kind's files carry the VERSION/Begin…End
// header prologue that gates the parser's parsingHeader flag: true for
// .cls/.frm/.ctl/.dsr, false for .bas (declarations/procedures start
// immediately) and for .vbp (not a CST input at all).
func (k Kind) HasHeader() bool {
	switch k {
	case KindClass, KindForm, KindControl, KindDesigner:
		return true
	default:
		return false
	}
}

// Parse runs vb6parse.ParseText over source, using fileName only to
// classify the extension for diagnostics — the grammar accepted does not
// currently branch on Kind beyond what the parser's own parsingHeader
// flag and dispatcher already handle (a single CST grammar covers every
// header-bearing file type; .vbp is a project manifest, not a CST input,
// and must go through the vbproject package instead).
func Parse(fileName string, source []byte) (*vb6parse.Cst, vb6parse.Failures, error) {
	if KindForExtension(fileName) == KindProject {
		return nil, nil, fmt.Errorf("vb6file: %s is a project file; use vbproject.Parse instead", fileName)
	}
	tree, failures := vb6parse.ParseText(fileName, source)
	return tree, failures, nil
}

// HeaderVersion is a normalized "VERSION major.minor [CLASS]" header line,
// the first line of every .cls and most .frm/.ctl files.
type HeaderVersion struct {
	Major, Minor int
	// ClassAttribute is true when the line ends in the literal "CLASS"
	// token (only .cls files carry it; .frm/.ctl headers are plain
	// "VERSION 5.00").
	ClassAttribute bool
}

// semverString renders v as the "vMAJOR.MINOR.0" form golang.org/x/mod/semver
// requires.
func (v HeaderVersion) semverString() string {
	return fmt.Sprintf("v%d.%d.0", v.Major, v.Minor)
}

// String renders v back in VB6's own "major.minor" header spelling.
func (v HeaderVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare orders two header versions using golang.org/x/mod/semver.Compare
// over their normalized "vMAJOR.MINOR.0" forms: -1, 0, or 1.
func Compare(a, b HeaderVersion) int {
	return semver.Compare(a.semverString(), b.semverString())
}

// ParseHeaderVersion parses a line of the form "VERSION 1.0" or
// "VERSION 1.0 CLASS" — the first line of a .cls header — and validates
// the normalized version string via semver.IsValid, rejecting malformed
// headers (e.g. non-numeric components) before any caller relies on
// Compare.
func ParseHeaderVersion(line string) (HeaderVersion, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) < 2 || !strings.EqualFold(fields[0], "VERSION") {
		return HeaderVersion{}, fmt.Errorf("vb6file: not a VERSION header line: %q", line)
	}
	major, minor, ok := strings.Cut(fields[1], ".")
	if !ok {
		return HeaderVersion{}, fmt.Errorf("vb6file: malformed version number %q", fields[1])
	}
	majorN, err := strconv.Atoi(major)
	if err != nil {
		return HeaderVersion{}, fmt.Errorf("vb6file: malformed major version %q: %w", major, err)
	}
	minorN, err := strconv.Atoi(minor)
	if err != nil {
		return HeaderVersion{}, fmt.Errorf("vb6file: malformed minor version %q: %w", minor, err)
	}
	hv := HeaderVersion{
		Major:          majorN,
		Minor:          minorN,
		ClassAttribute: len(fields) >= 3 && strings.EqualFold(fields[2], "CLASS"),
	}
	if !semver.IsValid(hv.semverString()) {
		return HeaderVersion{}, fmt.Errorf("vb6file: %q does not normalize to a valid semver", line)
	}
	return hv, nil
}
