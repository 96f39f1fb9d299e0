package session

import (
	"fmt"
	"io"
	"strconv"
)

const (
	defaultSelectorRowLength = 80
	defaultSelectorRowCount  = 5
)

// Selectable is anything the selector can present as a numbered choice.
type Selectable interface {
	Selector() string
}

type selector[T Selectable] struct {
	options []T
	output  []string
}

// NewSelector builds a numbered column display over the given options.
func NewSelector[T Selectable](options []T) *selector[T] {
	s := &selector[T]{options: options}
	s.build()
	return s
}

// Prompt shows the options and reads a selection until valid.
func (s *selector[T]) Prompt(rw io.ReadWriter, prompt string) (T, error) {
	rw.Write([]byte(fmt.Sprintf("%s\n", prompt)))

	for _, str := range s.output {
		if len(str) > 0 {
			rw.Write([]byte(fmt.Sprintf("%s\n", str)))
		}
	}

	selection, err := Prompt(rw, "Make your selection: ", WithValidator(
		func(str string) (bool, string) {
			i, err := strconv.Atoi(str)
			if err != nil || i < 1 || i > len(s.options) {
				return false, "Invalid selection!\n"
			}
			return true, ""
		},
	))
	if err != nil {
		var zero T
		return zero, err
	}

	i, err := strconv.Atoi(selection)
	if err != nil {
		var zero T
		return zero, err
	}

	return s.options[i-1], nil
}

func (s *selector[T]) build() {
	// Column width fits the longest option plus numbering.
	colWidth := 1
	for _, v := range s.options {
		l := len(v.Selector()) + 7
		if l > colWidth {
			colWidth = l
		}
	}

	// Fill columns first, left to right; grow past the default row count
	// only when the options need the space.
	numVals := len(s.options)
	numCols := defaultSelectorRowLength / colWidth
	if numCols < 1 {
		numCols = 1
	}
	numRows := numVals / numCols
	if numRows < defaultSelectorRowCount {
		numRows = defaultSelectorRowCount
	}

	count := 0
	rows := make([]string, numRows)
	for _, v := range s.options {
		rows[count%numRows] = rows[count%numRows] + fmt.Sprintf("%2d. %-*s  ", count+1, colWidth-5, v.Selector())
		count++
	}

	s.output = rows
}
