package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Console prints the human-readable run transcript.
type Console struct {
	w       io.Writer
	heading *color.Color
}

// NewConsole writes to w. Headings are colored only when colored is true.
func NewConsole(w io.Writer, colored bool) *Console {
	heading := color.New(color.FgCyan, color.Bold)
	if colored {
		heading.EnableColor()
	} else {
		heading.DisableColor()
	}
	return &Console{w: w, heading: heading}
}

// Println writes its operands followed by a newline.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.w, a...)
}

// Printf writes a formatted line fragment.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.w, format, a...)
}

// Banner prints title between two rules.
func (c *Console) Banner(title string) {
	fmt.Fprintln(c.w, domain.Rule)
	c.heading.Fprintln(c.w, title)
	fmt.Fprintln(c.w, domain.Rule)
}

// Section prints a blank line and title underlined to its own width.
func (c *Console) Section(title string) {
	fmt.Fprintln(c.w)
	c.heading.Fprintln(c.w, title)
	fmt.Fprintln(c.w, strings.Repeat("=", len(title)))
}

// Table renders rows under header as a bordered text table.
func (c *Console) Table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(c.w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}
