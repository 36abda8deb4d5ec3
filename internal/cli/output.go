package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/vaultpass/passforge/internal/breach"
	"github.com/vaultpass/passforge/internal/model"
)

var (
	weakColor   = color.New(color.FgRed, color.Bold)
	mediumColor = color.New(color.FgYellow)
	strongColor = color.New(color.FgGreen, color.Bold)
	dimColor    = color.New(color.Faint)
	valueColor  = color.New(color.FgCyan, color.Bold)
)

func labelColor(label string) *color.Color {
	switch label {
	case "Strong":
		return strongColor
	case "Medium":
		return mediumColor
	default:
		return weakColor
	}
}

// printer serializes writes from the command and from breach callbacks.
type printer struct {
	mu  sync.Mutex
	out io.Writer
}

func newPrinter(out io.Writer) *printer {
	return &printer{out: out}
}

func (p *printer) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

func (p *printer) report(resp model.GenerateResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, valueColor.Sprint(resp.Password))
	fmt.Fprintf(p.out, "  entropy   %d bits %s\n", resp.Entropy.Bits,
		dimColor.Sprintf("(online %s, offline %s)", resp.Entropy.Online, resp.Entropy.Offline))
	fmt.Fprintf(p.out, "  strength  %s %s\n", labelColor(resp.Strength.Label).Sprint(resp.Strength.Label),
		dimColor.Sprintf("(%d/6)", resp.Strength.Score))
	fmt.Fprintf(p.out, "  pattern   %d/4 %s\n", resp.Pattern.Score, dimColor.Sprintf("(%s)", resp.Pattern.CrackTime))
	if resp.Breach != nil {
		fmt.Fprintf(p.out, "  breach    %s\n", breachText(resp.Breach.State, resp.Breach.Count))
	}
	for _, issue := range resp.ComplianceIssues {
		fmt.Fprintf(p.out, "  policy    %s\n", mediumColor.Sprint(issue))
	}
}

// breachStatus is a breach.Monitor callback.
func (p *printer) breachStatus(res breach.Result) {
	if res.State == breach.StateIdle {
		return
	}
	p.printf("  breach    %s\n", breachText(res.State.String(), res.Count))
}

func breachText(state string, count int) string {
	switch state {
	case "safe":
		return strongColor.Sprint("not found in known breaches")
	case "compromised":
		return weakColor.Sprintf("seen %d times in breaches", count)
	case "error":
		return mediumColor.Sprint("check failed")
	case "checking":
		return dimColor.Sprint("checking...")
	default:
		return dimColor.Sprint(state)
	}
}
