package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptValidator judges one line of input. On rejection it returns the
// notice to show before reprompting.
type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

// WithValidator rejects input until it passes v.
func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

// WithMaxTries caps how many rejected answers Prompt tolerates before
// giving up with an error. Zero means unlimited.
func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// Prompt writes text and reads one line back, reprompting until the
// validator passes or the try budget runs out.
func Prompt(rw io.ReadWriter, text string, opts ...promptOption) (string, error) {
	cfg := &promptConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	br := bufio.NewReader(rw)
	for tries := 0; ; {
		if _, err := rw.Write([]byte(text)); err != nil {
			return "", err
		}

		line, _, err := br.ReadLine()
		if err != nil {
			return "", err
		}

		if cfg.validator == nil {
			return string(line), nil
		}
		ok, notice := cfg.validator(string(line))
		if ok {
			return string(line), nil
		}
		rw.Write([]byte(notice))

		tries++
		if cfg.tries > 0 && tries == cfg.tries {
			rw.Write([]byte("too many tries\n"))
			return "", fmt.Errorf("too many tries")
		}
	}
}

// PromptYN asks a yes/no question and keeps asking until it gets one.
func PromptYN(rw io.ReadWriter, prompt string) (bool, error) {
	str, err := Prompt(rw, prompt, WithValidator(
		func(str string) (bool, string) {
			switch strings.ToLower(str) {
			case "y", "yes", "n", "no":
				return true, ""
			default:
				return false, "enter 'yes' or 'no'\n"
			}
		},
	))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(str) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
