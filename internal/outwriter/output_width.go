package outwriter

import (
	"os"

	"github.com/khaledelg/portfolio/internal/contract"
	"golang.org/x/term"
)

// GetMaxDescriptionWidth calculates the maximum width for project descriptions
// in table output based on terminal width.
func GetMaxDescriptionWidth(cfg *contract.Config) int {
	termWidth := cfg.Width // absolute override from flag/env

	if termWidth <= 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Name + Label + Stars + Language + Updated with borders/padding
	baseWidth := 85

	available := termWidth - baseWidth
	if available < 20 {
		return 20
	}
	if available > 80 {
		return 80
	}
	return available
}
