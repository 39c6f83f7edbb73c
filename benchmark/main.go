// Package main provides a performance benchmarking tool for the langmatch CLI.
// It measures execution times across store backends and worker counts,
// running each test multiple times, treating the first successful run as cold
// and averaging the rest as warm, generating CSV output for performance
// analysis and documentation.
//
// Prerequisites:
// - langmatch binary installed and available in PATH
//
// Usage: go run benchmark/main.go
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Backend  string
	Workers  int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout  time.Duration
	Runs     int
	Backends []string
	Workers  []int
}

func main() {
	config := BenchmarkConfig{
		Timeout:  time.Minute,
		Runs:     5,
		Backends: []string{"none", "sqlite"},
		Workers:  []int{1, 4, 8},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear the store so sqlite runs measure fresh writes
	fmt.Printf("Clearing store...\n")
	clearCmd := exec.Command("langmatch", "store", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear store: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Store cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the langmatch binary exists
func checkPrerequisites() error {
	if _, err := exec.LookPath("langmatch"); err != nil {
		return fmt.Errorf("langmatch binary not found in PATH")
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured backends and worker counts
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: backends %v, workers %v, %d runs each\n",
		config.Backends, config.Workers, config.Runs)

	for _, backend := range config.Backends {
		for _, workers := range config.Workers {
			fmt.Printf("Benchmarking backend=%s workers=%d\n", backend, workers)

			cold, times := runBenchmark(config, backend, workers)

			warmAvg := "TIMEOUT"
			if len(times) > 0 {
				var sum float64
				for _, t := range times {
					sum += t
				}
				warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(times)))
			}

			coldStr := "TIMEOUT"
			if cold > 0 {
				coldStr = fmt.Sprintf("%.3fs", cold)
			}

			fmt.Printf("  Cold time: %s, Warm average: %s\n", coldStr, warmAvg)

			results = append(results, BenchmarkResult{
				Backend:  backend,
				Workers:  workers,
				ColdTime: coldStr,
				WarmTime: warmAvg,
			})
		}
	}

	return results
}

// runBenchmark executes a recommend command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, backend string, workers int) (coldTime float64, warmTimes []float64) {
	args := []string{
		"recommend",
		"--store-backend", backend,
		"--workers", strconv.Itoa(workers),
		"--answer", "difficulty_preference=moderate",
		"--answer", `cultural_interests=["cuisine","music"]`,
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("langmatch", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Matching completed in") &&
		strings.Contains(outputStr, "workers")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/langmatch_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"backend", "workers", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{result.Backend, strconv.Itoa(result.Workers), result.ColdTime, result.WarmTime}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  backend=%-7s workers=%d: Cold: %s, Warm: %s\n",
			result.Backend, result.Workers, result.ColdTime, result.WarmTime)
	}
	fmt.Printf("Benchmark script completed successfully\n")
}
