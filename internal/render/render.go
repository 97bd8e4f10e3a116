// Package render writes counting results for people and for programs.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/limaJavier/counting/internal/problem"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// Count renders a count in decimal, with thousands separators when grouping is set.
func Count(count *big.Int, grouping bool) string {
	if grouping {
		// BigComma divides its argument in place
		return humanize.BigComma(new(big.Int).Set(count))
	}
	return count.String()
}

// Response is the JSON envelope for every command.
type Response struct {
	Status  string       `json:"status"` // "ok" or "error"
	Results []ResultView `json:"results,omitempty"`
	Error   *ErrorView   `json:"error,omitempty"`
}

// ResultView echoes the problem next to its count. Count holds plain digits so that
// consumers can parse it at full precision.
type ResultView struct {
	Input     problem.Problem `json:"input"`
	Count     string          `json:"count"`
	Formatted string          `json:"formatted"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Formatter writes results and errors in the configured format.
type Formatter struct {
	Format   string
	Grouping bool
	Writer   io.Writer
}

func (formatter *Formatter) Results(results []problem.Result) error {
	if formatter.Format == FormatJSON {
		views := make([]ResultView, 0, len(results))
		for _, result := range results {
			views = append(views, ResultView{
				Input:     result.Problem,
				Count:     result.Count.String(),
				Formatted: Count(result.Count, formatter.Grouping),
			})
		}
		return json.NewEncoder(formatter.Writer).Encode(Response{Status: "ok", Results: views})
	}

	for _, result := range results {
		label := string(result.Problem.Kind)
		if result.Problem.Name != "" {
			label = result.Problem.Name
		}
		if _, err := fmt.Fprintf(formatter.Writer, "%v: %v\n", label, Count(result.Count, formatter.Grouping)); err != nil {
			return err
		}
	}
	return nil
}

func (formatter *Formatter) Error(code, message string) error {
	if formatter.Format == FormatJSON {
		return json.NewEncoder(formatter.Writer).Encode(Response{
			Status: "error",
			Error:  &ErrorView{Code: code, Message: message},
		})
	}

	_, err := fmt.Fprintf(formatter.Writer, "Error [%v]: %v\n", code, message)
	return err
}
