package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/matchain/mcm"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := printer{w: &buf}

	p.heading("Matrix chain 6x7 7x5")
	p.field("optimal cost", 210)
	p.status(verdictPass, "oracle agrees: %d", 210)
	p.status(verdictFail, "oracle disagrees: %d", 211)
	p.aside("%s", "detail")

	out := buf.String()
	assert.Contains(t, out, "Matrix chain 6x7 7x5")
	assert.Contains(t, out, "optimal cost")
	assert.Contains(t, out, "210")
	assert.Contains(t, out, "● oracle agrees: 210")
	assert.Contains(t, out, "■ oracle disagrees: 211")
	assert.Contains(t, out, "    detail")
}

func TestPrinterTable(t *testing.T) {
	var buf bytes.Buffer
	printer{w: &buf}.table("costs", mcm.Table{{0, 210, 308}, {0, 0, 140}, {0, 0, 0}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "costs")
	assert.Equal(t, "    0 210 308", lines[1])
	assert.Equal(t, "    ·   0 140", lines[2])
	assert.Equal(t, "    ·   ·   0", lines[3])
}
