package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// PromptFunc prompts the user for free-text input and returns the response.
type PromptFunc func(prompt string) (string, error)

// SelectFunc prompts the user to select one option from a list. Returns 0-based index.
type SelectFunc func(title string, options []string) (int, error)

// MultiSelectFunc prompts the user to select multiple options. Returns 0-based indices.
type MultiSelectFunc func(title string, options []string) ([]int, error)

// PromptKit bundles all prompt function types for dependency injection.
type PromptKit struct {
	Prompt      PromptFunc
	Confirm     ConfirmFunc
	Select      SelectFunc
	MultiSelect MultiSelectFunc
}

// NewPromptKit uses huh forms when in is a terminal and plain line input
// otherwise, so piped answers still work.
func NewPromptKit(in io.Reader, out io.Writer) PromptKit {
	if isTerminal(in) {
		return PromptKit{
			Prompt:      huhPrompt,
			Confirm:     huhConfirm,
			Select:      huhSelect,
			MultiSelect: huhMultiSelect,
		}
	}
	r := lineReader(in)
	return PromptKit{
		Prompt:      NewPromptFunc(r, out),
		Confirm:     NewConfirmFunc(r, out),
		Select:      NewSelectFunc(r, out),
		MultiSelect: NewMultiSelectFunc(r, out),
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// ResolveConfirmFunc skips the question when yes is set.
func ResolveConfirmFunc(yes bool, kit PromptKit) ConfirmFunc {
	if yes {
		return AlwaysYes()
	}
	return kit.Confirm
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func lineReader(in io.Reader) *bufio.Reader {
	if r, ok := in.(*bufio.Reader); ok {
		return r
	}
	return bufio.NewReader(in)
}

// readLine returns the next trimmed line. EOF with no input is reported as
// io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// NewConfirmFunc reads a y/N answer from in. Anything but "y" or "yes",
// including end of input, declines.
func NewConfirmFunc(in io.Reader, out io.Writer) ConfirmFunc {
	r := lineReader(in)
	return func(prompt string) (bool, error) {
		_, _ = fmt.Fprintf(out, "%s [y/N] ", prompt)
		answer, err := readLine(r)
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		answer = strings.ToLower(answer)
		return answer == "y" || answer == "yes", nil
	}
}

// NewPromptFunc reads one line of free text from in.
func NewPromptFunc(in io.Reader, out io.Writer) PromptFunc {
	r := lineReader(in)
	return func(prompt string) (string, error) {
		_, _ = fmt.Fprintf(out, "%s: ", prompt)
		return readLine(r)
	}
}

// NewSelectFunc lists numbered options and reads the chosen number from in.
func NewSelectFunc(in io.Reader, out io.Writer) SelectFunc {
	r := lineReader(in)
	return func(title string, options []string) (int, error) {
		printOptions(out, title, options)
		_, _ = fmt.Fprint(out, "> ")
		answer, err := readLine(r)
		if err != nil {
			return 0, err
		}
		return parseChoice(answer, len(options))
	}
}

// NewMultiSelectFunc lists numbered options and reads a comma separated
// list of numbers from in. An empty answer selects nothing.
func NewMultiSelectFunc(in io.Reader, out io.Writer) MultiSelectFunc {
	r := lineReader(in)
	return func(title string, options []string) ([]int, error) {
		printOptions(out, title, options)
		_, _ = fmt.Fprint(out, "> ")
		answer, err := readLine(r)
		if err != nil {
			return nil, err
		}
		var picked []int
		for _, field := range strings.Split(answer, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			idx, err := parseChoice(field, len(options))
			if err != nil {
				return nil, err
			}
			picked = append(picked, idx)
		}
		return picked, nil
	}
}

func printOptions(out io.Writer, title string, options []string) {
	_, _ = fmt.Fprintln(out, title)
	for i, o := range options {
		_, _ = fmt.Fprintf(out, "  %d) %s\n", i+1, o)
	}
}

func parseChoice(answer string, n int) (int, error) {
	v, err := strconv.Atoi(answer)
	if err != nil || v < 1 || v > n {
		return 0, fmt.Errorf("invalid choice '%s' (expected 1-%d)", answer, n)
	}
	return v - 1, nil
}

func huhConfirm(prompt string) (bool, error) {
	var result bool
	err := huh.NewConfirm().
		Title(prompt).
		Value(&result).
		Run()
	return result, err
}

func huhPrompt(prompt string) (string, error) {
	var result string
	err := huh.NewInput().
		Title(prompt).
		Value(&result).
		Run()
	return result, err
}

func huhSelect(title string, options []string) (int, error) {
	var result int
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, i)
	}
	err := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&result).
		Run()
	return result, err
}

func huhMultiSelect(title string, options []string) ([]int, error) {
	var result []int
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, i)
	}
	err := huh.NewMultiSelect[int]().
		Title(title).
		Options(opts...).
		Value(&result).
		Run()
	return result, err
}
