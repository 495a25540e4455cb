package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	headingStyle = color.New(color.Bold, color.FgHiWhite)
	familyStyle  = color.New(color.BgCyan, color.FgBlack, color.Bold)
	addressStyle = color.New(color.FgWhite)
	countStyle   = color.New(color.FgCyan)
	mainnetStyle = color.New(color.FgGreen)
	testnetStyle = color.New(color.FgYellow)
	unknownStyle = color.New(color.Faint)
	missingStyle = color.New(color.FgRed)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Capitalize first letter
	if len(message) > 0 {
		message = strings.ToUpper(message[:1]) + message[1:]
	}
	return color.New(color.FgRed).Sprintf("❌ %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// RenderWarnings prints one line per skipped artifact
func RenderWarnings(out io.Writer, warnings []domain.ArtifactParseWarning) {
	for _, w := range warnings {
		fmt.Fprintln(out, FormatWarning(w.String()))
	}
}

// FamilyTitle title-cases families derived from lower-case directory names.
// Families that already carry casing from the network table are kept as is.
func FamilyTitle(family domain.NetworkFamily) string {
	s := string(family)
	if s != strings.ToLower(s) {
		return s
	}
	return cases.Title(language.English).String(s)
}

// plural returns "1 deployment" or "2 deployments"
func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// classLabel colors a network class
func classLabel(class domain.NetworkClass) string {
	switch class {
	case domain.NetworkClassMainnet:
		return mainnetStyle.Sprint(string(class))
	case domain.NetworkClassTestnet:
		return testnetStyle.Sprint(string(class))
	default:
		return unknownStyle.Sprint(string(class))
	}
}

// chainIDLabel prints a chain ID, or a dash when it is unknown
func chainIDLabel(chainID uint64) string {
	if chainID == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", chainID)
}

// newTable creates a borderless left-aligned table writing to out
func newTable(out io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box.PaddingRight = "   "
	t.Style().Format.Header = text.FormatDefault
	if header != nil {
		t.AppendHeader(header)
		configs := make([]table.ColumnConfig, len(header))
		for i := range header {
			configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignLeft}
		}
		t.SetColumnConfigs(configs)
	}
	return t
}
