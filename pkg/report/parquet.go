package report

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// Row is the parquet schema of an exported result.
type Row struct {
	Unit           string  `parquet:"unit"`
	Algorithm      string  `parquet:"algorithm"`
	Needles        int64   `parquet:"needles"`
	Bytes          int64   `parquet:"bytes"`
	Iterations     int64   `parquet:"iterations"`
	BestNanos      int64   `parquet:"best_ns"`
	MedianNanos    int64   `parquet:"median_ns"`
	Throughput     float64 `parquet:"throughput_bps"`
	BestThroughput float64 `parquet:"best_throughput_bps"`
	Matches        int64   `parquet:"matches"`
	Corpus         string  `parquet:"corpus"`
	CorpusDigest   string  `parquet:"corpus_xxh64"`
	OS             string  `parquet:"os"`
	Arch           string  `parquet:"arch"`
	CPUs           int64   `parquet:"cpus"`
	GoVersion      string  `parquet:"go_version"`
	TotalMemBytes  int64   `parquet:"total_mem_bytes"`
}

// Rows flattens a run into one Row per result.
func Rows(run Run) []Row {
	digest := ""
	if run.Corpus != "" {
		digest = fmt.Sprintf("%016x", run.Digest)
	}

	rows := make([]Row, 0, len(run.Results))
	for _, r := range run.Results {
		rows = append(rows, Row{
			Unit:           r.Unit,
			Algorithm:      r.Algorithm,
			Needles:        int64(r.Needles),
			Bytes:          r.Bytes,
			Iterations:     int64(r.Iterations),
			BestNanos:      r.Best.Nanoseconds(),
			MedianNanos:    r.Median.Nanoseconds(),
			Throughput:     r.Throughput(),
			BestThroughput: r.BestThroughput(),
			Matches:        int64(r.Matches),
			Corpus:         run.Corpus,
			CorpusDigest:   digest,
			OS:             run.Host.OS,
			Arch:           run.Host.Arch,
			CPUs:           int64(run.Host.CPUs),
			GoVersion:      run.Host.GoVersion,
			TotalMemBytes:  int64(run.Host.TotalMemBytes),
		})
	}
	return rows
}

// WriteParquet writes the run to path, replacing any existing file. Rows
// go to a temp file beside path which is renamed into place, so a failed
// export never leaves a truncated file under the final name.
func WriteParquet(path string, run Run) error {
	tmpPath := path + ".tmp"
	if err := parquet.WriteFile(tmpPath, Rows(run)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write parquet %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename parquet %s: %w", path, err)
	}
	return nil
}
