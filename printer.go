package nlptour

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/future-architect/nlptour/nlp"
)

var (
	headingColor = color.New(color.FgBlue, color.Bold)
	resultColor  = color.New(color.FgCyan)
)

type printer struct {
	w io.Writer
}

func (p printer) heading(format string, args ...interface{}) {
	headingColor.Fprintf(p.w, format+"\n", args...)
}

func (p printer) input(text string) {
	fmt.Fprintln(p.w, text)
}

func (p printer) result(format string, args ...interface{}) {
	resultColor.Fprintf(p.w, format+"\n", args...)
}

func (p printer) list(items []string) {
	p.result("%s", nlp.FormatList(items))
}
