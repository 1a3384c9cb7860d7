package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Origin values for sources that do not come from a file.
const (
	OriginStdin  = "stdin"
	OriginPrompt = "prompt"
)

const maxPromptLine = 1 << 20

// Source is the resolved text for one analysis run.
type Source struct {
	Text   string
	Label  string
	Origin string // file path, "stdin", or "prompt"
}

// Options control where analysis text is read from.
type Options struct {
	FilePath string    // read from this file when set
	HTML     bool      // force HTML extraction regardless of extension
	Stdin    io.Reader // fallback source when FilePath is empty
	Stdout   io.Writer // prompt destination for interactive sessions
}

// Read resolves the analysis text for a run. Files win over stdin; an
// interactive terminal prompts for a single line, anything else is drained.
func Read(opts Options) (Source, error) {
	if strings.TrimSpace(opts.FilePath) != "" {
		return fromFile(opts.FilePath, opts.HTML)
	}
	return fromStdin(opts.Stdin, opts.Stdout, opts.HTML)
}

func fromFile(path string, forceHTML bool) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("read input file: %w", err)
	}
	text := string(data)
	if forceHTML || IsHTMLPath(path) {
		text, err = ExtractText(strings.NewReader(text))
		if err != nil {
			return Source{}, err
		}
	}
	return Source{Text: text, Label: DeriveLabel(path), Origin: path}, nil
}

func fromStdin(stdin io.Reader, stdout io.Writer, forceHTML bool) (Source, error) {
	if stdin == nil {
		return Source{}, errors.New("no input available: pass --file or pipe text on stdin")
	}

	var source Source
	if interactive(stdin) {
		if stdout != nil {
			fmt.Fprint(stdout, "Enter a text: ")
		}
		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), maxPromptLine)
		if scanner.Scan() {
			source.Text = scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			return Source{}, fmt.Errorf("read prompt input: %w", err)
		}
		source.Label = "Interactive Input"
		source.Origin = OriginPrompt
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return Source{}, fmt.Errorf("read stdin: %w", err)
		}
		source.Text = string(data)
		source.Label = "Standard Input"
		source.Origin = OriginStdin
	}

	if forceHTML {
		extracted, err := ExtractText(strings.NewReader(source.Text))
		if err != nil {
			return Source{}, err
		}
		source.Text = extracted
	}
	return source, nil
}

func interactive(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
