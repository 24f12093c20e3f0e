package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetInt reads an integer in [lo, hi], re-prompting on invalid input.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer, lo, hi int) (int, error) {
	for {
		text, err := GetSimpleText(reader, fmt.Sprintf("%s (%d-%d)", prompt, lo, hi), w)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(text)
		if err != nil || v < lo || v > hi {
			fmt.Fprintf(w, "Please enter a whole number between %d and %d.\n", lo, hi)
			continue
		}
		return v, nil
	}
}

// GetFloat reads a number in [lo, hi], re-prompting on invalid input.
func GetFloat(reader *bufio.Reader, prompt string, w io.Writer, lo, hi float64) (float64, error) {
	for {
		text, err := GetSimpleText(reader, fmt.Sprintf("%s (%g-%g)", prompt, lo, hi), w)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || v < lo || v > hi {
			fmt.Fprintf(w, "Please enter a number between %g and %g.\n", lo, hi)
			continue
		}
		return v, nil
	}
}

// GetYesNo reads a y/n answer; an empty line means no.
func GetYesNo(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	text, err := GetSimpleText(reader, prompt+" [y/N]", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(text) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// GetMultiline prints a prompt to w and reads lines until an empty line is
// entered. The collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, _ := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetChoice prints the numbered options and reads a 1-based selection,
// returning the chosen option value.
func GetChoice(reader *bufio.Reader, prompt string, w io.Writer, options []string) (string, error) {
	fmt.Fprintln(w, prompt)
	for i, opt := range options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, opt)
	}
	idx, err := GetInt(reader, "Select", w, 1, len(options))
	if err != nil {
		return "", err
	}
	return options[idx-1], nil
}
