package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/limaJavier/counting/internal/problem"
	"github.com/samber/lo"
)

var (
	directory string
	output    string
	repeat    int
)

type TestMetadata struct {
	File    string
	Problem problem.Problem
}

type BenchmarkResult struct {
	Test     TestMetadata
	Duration time.Duration // mean over all runs
	Digits   int
	Err      error
}

func main() {
	flag.StringVar(&directory, "dir", "testdata", "directory of JSON or YAML problem files")
	flag.StringVar(&output, "out", "benchmark_results.csv", "CSV file to write")
	flag.IntVar(&repeat, "repeat", 5, "runs per problem")
	flag.Parse()

	if repeat < 1 {
		log.Fatalf("repeat must be positive, got %v", repeat)
	}

	tests, err := getTests(directory)
	if err != nil {
		log.Fatalf("cannot load tests: %v", err)
	}

	results := make([]BenchmarkResult, 0, len(tests))
	for _, test := range tests {
		fmt.Printf("Benchmarking \"%v\" from \"%v\"\n", label(test.Problem), test.File)
		results = append(results, measure(test, repeat))
	}

	file, err := os.Create(output)
	if err != nil {
		log.Fatalf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := toCsv(file, results); err != nil {
		log.Fatalf("cannot write CSV file: %v", err)
	}
}

// getTests loads every problem of every problem file in directory, in file name order.
func getTests(directory string) ([]TestMetadata, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	files := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		extension := filepath.Ext(entry.Name())
		return filepath.Join(directory, entry.Name()), !entry.IsDir() && slices.Contains([]string{".json", ".yaml", ".yml"}, extension)
	})

	tests := make([]TestMetadata, 0)
	for _, file := range files {
		problems, err := problem.LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("cannot parse problem file %v: %w", file, err)
		}
		tests = append(tests, lo.Map(problems, func(current problem.Problem, _ int) TestMetadata {
			return TestMetadata{File: file, Problem: current}
		})...)
	}
	return tests, nil
}

func measure(test TestMetadata, repeat int) BenchmarkResult {
	var (
		count *big.Int
		total time.Duration
	)
	for range repeat {
		start := time.Now()
		result, err := problem.Solve(test.Problem)
		total += time.Since(start)
		if err != nil {
			return BenchmarkResult{Test: test, Err: err}
		}
		count = result.Count
	}

	return BenchmarkResult{
		Test:     test,
		Duration: total / time.Duration(repeat),
		Digits:   len(count.String()),
	}
}

func toCsv(writer io.Writer, results []BenchmarkResult) error {
	csvWriter := csv.NewWriter(writer)

	header := []string{"File", "Problem", "Kind", "Duration(us)", "Digits", "Error"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			result.Test.File,
			label(result.Test.Problem),
			string(result.Test.Problem.Kind),
			fmt.Sprintf("%d", result.Duration.Microseconds()),
			fmt.Sprintf("%d", result.Digits),
			"",
		}
		if result.Err != nil {
			record[len(record)-1] = result.Err.Error()
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func label(current problem.Problem) string {
	if current.Name != "" {
		return current.Name
	}
	return string(current.Kind)
}
