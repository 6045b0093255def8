package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hexpick/internal/output"
	"hexpick/pkg/colorutil"
)

const swatchWidth = 8

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func newConvertCmd(f *flags) *cobra.Command {
	var (
		aligned bool
		swatch  bool
		copyRow string
	)

	cmd := &cobra.Command{
		Use:   "convert <#rrggbb>",
		Short: "Print a color in every notation",
		Long: `Print the hsl, hsv, rgb and hex forms of a color exactly as the picker
copies them to the clipboard. On a terminal a color swatch is printed first.`,
		Example: `  hexpick convert '#cc85c5'
  hexpick convert --output ori '#cc85c5'
  hexpick convert --copy hsl '#cc85c5'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colorutil.ParseHex(args[0])
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(f.output)
			if err != nil {
				return err
			}
			lines := output.Lines(format, c)

			w := cmd.OutOrStdout()
			if swatch || isTerminal(w) {
				fmt.Fprintln(w, renderSwatch(c))
			}
			for _, line := range lines {
				text := line.Copied
				if aligned {
					text = line.Shown
				}
				fmt.Fprintln(w, text)
			}

			if copyRow == "" {
				return nil
			}
			for _, line := range lines {
				if line.Label == strings.ToLower(copyRow) {
					if err := writeClipboard(line.Copied); err != nil {
						return fmt.Errorf("copy to clipboard: %w", err)
					}
					return nil
				}
			}
			return fmt.Errorf("unknown row %q (want hsl, hsv, rgb or hex)", copyRow)
		},
	}

	cmd.Flags().BoolVarP(&aligned, "aligned", "a", false, "pad fields as shown in the window")
	cmd.Flags().BoolVar(&swatch, "swatch", false, "print the swatch even when not on a terminal")
	cmd.Flags().StringVar(&copyRow, "copy", "", "also copy one row (hsl, hsv, rgb, hex) to the clipboard")
	return cmd
}

// renderSwatch draws a block in c followed by its hex code.
func renderSwatch(c colorutil.Color) string {
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", swatchWidth))
	return block + " " + c.Hex()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
