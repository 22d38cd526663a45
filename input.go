package main

import (
	"io"
	"os"
	"strings"
)

// missionInput is one resolved command-line input
type missionInput struct {
	Source string
	Open   func() (io.ReadCloser, error)
}

// resolveInput maps an argument to stdin, a file, or inline mission text
func resolveInput(arg string, stdin io.Reader) missionInput {
	if arg == "-" {
		return missionInput{
			Source: "stdin",
			Open: func() (io.ReadCloser, error) {
				return io.NopCloser(stdin), nil
			},
		}
	}

	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		return missionInput{
			Source: arg,
			Open: func() (io.ReadCloser, error) {
				return os.Open(arg)
			},
		}
	}

	return missionInput{
		Source: "inline",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(arg)), nil
		},
	}
}
