package wordcloud

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"wordmill/internal/config"
	"wordmill/internal/logging"
)

// Renderer is the behaviour the analyze command needs from a word-cloud
// collaborator.
type Renderer interface {
	Render(ctx context.Context, freqs map[string]int, dest string) error
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onStdout func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client drives an external word-cloud renderer and an optional image viewer.
type Client struct {
	binary     string
	viewer     string
	width      int
	height     int
	background string
	timeout    time.Duration
	exec       Executor
	logger     *slog.Logger
}

// New constructs a word-cloud client from configuration.
func New(cfg config.WordCloud, logger *slog.Logger, opts ...Option) (*Client, error) {
	binary := strings.TrimSpace(cfg.Renderer)
	if binary == "" {
		return nil, errors.New("word-cloud renderer binary required")
	}
	client := &Client{
		binary:     binary,
		viewer:     strings.TrimSpace(cfg.Viewer),
		width:      cfg.Width,
		height:     cfg.Height,
		background: cfg.Background,
		timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
		exec:       commandExecutor{},
		logger:     logging.NewComponentLogger(logger, "wordcloud"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Render writes a word-cloud image for freqs to dest.
func (c *Client) Render(ctx context.Context, freqs map[string]int, dest string) error {
	dest = strings.TrimSpace(dest)
	if dest == "" {
		return errors.New("destination image path required")
	}
	if len(freqs) == 0 {
		return errors.New("no words to render")
	}
	if dir := filepath.Dir(dest); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create image directory: %w", err)
		}
	}

	corpusPath, err := writeTempFile("wordmill-corpus-*.txt", corpus(freqs))
	if err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}
	defer os.Remove(corpusPath) //nolint:errcheck

	// Upstream filtering already removed stopwords; hand the renderer an
	// empty list so it does not apply its own on top.
	stopwordsPath, err := writeTempFile("wordmill-stopwords-*.txt", "")
	if err != nil {
		return fmt.Errorf("write stopword file: %w", err)
	}
	defer os.Remove(stopwordsPath) //nolint:errcheck

	args := []string{
		"--text", corpusPath,
		"--imagefile", dest,
		"--width", strconv.Itoa(c.width),
		"--height", strconv.Itoa(c.height),
		"--background", c.background,
		"--stopwords", stopwordsPath,
		"--no_collocations",
	}

	renderCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	started := time.Now()
	onStdout := func(line string) {
		c.logger.Debug("renderer output", logging.Args(logging.String("line", line))...)
	}
	if err := c.exec.Run(renderCtx, c.binary, args, onStdout); err != nil {
		return fmt.Errorf("run renderer: %w", err)
	}

	if _, err := os.Stat(dest); err != nil {
		return fmt.Errorf("renderer produced no image at %s: %w", dest, err)
	}

	c.logger.Debug("word cloud rendered", logging.Args(
		logging.String("path", dest),
		logging.Int("words", len(freqs)),
		logging.Duration("elapsed", time.Since(started)),
	)...)
	return nil
}

// Display opens the rendered image in the configured viewer.
func (c *Client) Display(ctx context.Context, path string) error {
	if c.viewer == "" {
		return errors.New("viewer binary required")
	}
	viewCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		viewCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.exec.Run(viewCtx, c.viewer, []string{path}, nil); err != nil {
		return fmt.Errorf("open image viewer: %w", err)
	}
	return nil
}

// corpus spells each token out count times, alphabetically, so renderers that
// count plain text reproduce the analyzed frequencies.
func corpus(freqs map[string]int) string {
	tokens := make([]string, 0, len(freqs))
	for token := range freqs {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	var b strings.Builder
	for _, token := range tokens {
		for i := 0; i < freqs[token]; i++ {
			b.WriteString(token)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func writeTempFile(pattern, content string) (string, error) {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	if _, err := file.WriteString(content); err != nil {
		file.Close()
		os.Remove(file.Name()) //nolint:errcheck
		return "", err
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name()) //nolint:errcheck
		return "", err
	}
	return file.Name(), nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onStdout func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	var scanErr error
	var once sync.Once

	scan := func(r io.Reader, forward func(string)) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			forward(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			once.Do(func() {
				scanErr = err
			})
		}
	}

	forward := func(line string) {
		if onStdout != nil {
			onStdout(line)
			return
		}
		fmt.Fprintln(os.Stderr, line)
	}

	wg.Add(2)
	go scan(stdout, forward)
	go scan(stderr, forward)

	wg.Wait()
	if scanErr != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("scan output: %w", scanErr)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait command: %w", err)
	}
	return nil
}
