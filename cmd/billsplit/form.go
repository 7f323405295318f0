package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bauermateus/Bill-Splitter-App/internal/config"
	"github.com/bauermateus/Bill-Splitter-App/internal/form"
	"github.com/bauermateus/Bill-Splitter-App/internal/format"
	"github.com/bauermateus/Bill-Splitter-App/internal/models"
)

const formHelp = `Commands:
  bill <amount>    set the bill total
  +                add a person
  -                remove a person
  tip <fraction>   set the tip slider, 0 to 1
  submit           confirm the bill entry
  show             print the form
  reset            start over
  help             print this help
  quit             leave
`

func newFormCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Drive a bill form from standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			return runForm(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.FormValidation())
		},
	}
}

// runForm reads one command per line from in until EOF or quit, printing the
// form after every change.
func runForm(in io.Reader, out io.Writer, validation form.Validation) error {
	f := form.New(
		form.WithValidation(validation),
		form.WithOnValueChange(func(value string) {
			fmt.Fprintf(out, "Submitted bill: %s\n", value)
		}),
	)

	fmt.Fprint(out, formHelp)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		name, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch strings.ToLower(name) {
		case "":
			continue
		case "bill":
			f.SetBillAmount(arg)
		case "+":
			f.IncrementSplit()
		case "-":
			f.DecrementSplit()
		case "tip":
			fraction, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
			if err != nil {
				fmt.Fprintf(out, "tip needs a number between 0 and 1, got %q\n", arg)
				continue
			}
			f.SetTipFraction(fraction)
		case "submit":
			if !f.Submit() {
				fmt.Fprintln(out, "Nothing to submit: enter a bill amount first")
			}
			continue
		case "show":
		case "reset":
			f.Reset()
		case "help":
			fmt.Fprint(out, formHelp)
			continue
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q, try help\n", name)
			continue
		}
		printSummary(out, f.Summary())
	}
	return scanner.Err()
}

func printSummary(w io.Writer, s models.Summary) {
	fmt.Fprintf(w, "Total per person: %s\n", format.Currency(s.TotalPerPerson))
	if !s.Valid {
		fmt.Fprintln(w, "  (enter a bill amount)")
		return
	}
	fmt.Fprintf(w, "  Bill:  %s\n", format.Currency(s.BillAmount))
	fmt.Fprintf(w, "  Split: %d\n", s.SplitCount)
	fmt.Fprintf(w, "  Tip:   %s (%s)\n", format.Currency(s.Tip), format.Percent(s.TipPercent))
}
