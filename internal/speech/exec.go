package speech

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// baseWordsPerMinute is espeak-ng's default speaking rate.
const baseWordsPerMinute = 175

// ExecSynthesizer speaks through an espeak-ng compatible command that reads
// text from stdin.
type ExecSynthesizer struct {
	Path string
}

// LookupSynthesizer resolves command on PATH. It returns nil when command is
// empty or missing so the coordinator reports speaking as unsupported.
func LookupSynthesizer(command string) Synthesizer {
	if command == "" {
		return nil
	}
	path, err := exec.LookPath(command)
	if err != nil {
		return nil
	}
	return &ExecSynthesizer{Path: path}
}

func (e *ExecSynthesizer) Speak(ctx context.Context, text string, v Voice) error {
	cmd := exec.CommandContext(ctx, e.Path, synthArgs(v)...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", e.Path, err)
	}
	return nil
}

// synthArgs maps a Voice onto espeak-ng flags: volume 0-1 becomes amplitude
// 0-100 and rate scales the default words per minute.
func synthArgs(v Voice) []string {
	vol := math.Max(0, math.Min(1, v.Volume))
	rate := v.Rate
	if rate <= 0 {
		rate = 1
	}
	return []string{
		"-v", voiceName(v.Lang),
		"-a", strconv.Itoa(int(math.Round(vol * 100))),
		"-s", strconv.Itoa(int(math.Round(rate * baseWordsPerMinute))),
		"--stdin",
	}
}

// voiceName reduces a locale like "ar-SA" to its language subtag.
func voiceName(lang string) string {
	if lang == "" {
		lang = DefaultLang
	}
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return strings.ToLower(lang)
}

// ExecRecognizer captures speech through a command that prints one
// transcript fragment per line on stdout. The locale is passed in the
// MODERK_SPEECH_LANG environment variable.
type ExecRecognizer struct {
	Path string
	Args []string
	// Log receives recognizer failures; nil means slog.Default().
	Log *slog.Logger
}

// LookupRecognizer parses command (program followed by space-separated
// arguments) and resolves the program on PATH. It returns nil when command
// is empty or missing.
func LookupRecognizer(command string) Recognizer {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}
	path, err := exec.LookPath(fields[0])
	if err != nil {
		return nil
	}
	return &ExecRecognizer{Path: path, Args: fields[1:]}
}

func (e *ExecRecognizer) Listen(ctx context.Context, lang string) (<-chan string, error) {
	cmd := exec.CommandContext(ctx, e.Path, e.Args...)
	cmd.Env = append(os.Environ(), "MODERK_SPEECH_LANG="+lang)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("recognizer pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start recognizer: %w", err)
	}

	// Unblock the scanner on cancel even if a child process keeps stdout open.
	go func() {
		<-ctx.Done()
		stdout.Close()
	}()

	out := make(chan string)
	go func() {
		defer close(out)
		sc := bufio.NewScanner(stdout)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			select {
			case out <- line:
			case <-ctx.Done():
			}
		}
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			e.logger().Warn("speech recognizer exited",
				slog.String("path", e.Path), slog.String("error", err.Error()))
		}
	}()
	return out, nil
}

func (e *ExecRecognizer) logger() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.Default()
}
