// Package files locates archived news input files on disk. The archive
// is laid out as one subdirectory per year containing monthly dump
// files under one of two fixed naming schemes, with ad-hoc .txt dumps
// as a fallback.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	apperrors "newswire/internal/errors"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery operations over an archive base
// directory
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// MonthCandidates returns the two fixed candidate filenames for a
// month, in preference order.
func MonthCandidates(year int, month time.Month) []string {
	return []string{
		fmt.Sprintf("STORY.RTRS.%04d-%02d.REC.JSON.txt", year, int(month)),
		fmt.Sprintf("News.RTRS.%04d%02d.0214.txt", year, int(month)),
	}
}

// FindMonthFiles returns the input files for one month. Candidates that
// exist in the year subdirectory win; when neither candidate is present
// every .txt file in the subdirectory is returned instead, sorted by
// name. When nothing matches (or the year directory is missing) a
// NOT_FOUND error is returned so the caller can log a warning and move
// on to the next period.
func (d *Discovery) FindMonthFiles(year int, month time.Month) ([]FileInfo, error) {
	subdir := filepath.Join(d.basePath, fmt.Sprintf("%d", year))

	var files []FileInfo
	for _, name := range MonthCandidates(year, month) {
		path := filepath.Join(subdir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, FileInfo{
			Path:    path,
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	if len(files) > 0 {
		return files, nil
	}

	entries, err := os.ReadDir(subdir)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("archive directory %s", subdir))
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".txt") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(subdir, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	if len(files) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("input files for %04d-%02d", year, int(month)))
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// FindParquetFiles returns every .parquet file directly inside dir,
// sorted by name so merge input order is deterministic.
func FindParquetFiles(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".parquet") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(dir, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthRange expands [start, end] into the year-months it spans,
// inclusive on both ends.
func MonthRange(start, end time.Time) []YearMonth {
	var months []YearMonth
	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !current.After(last) {
		months = append(months, YearMonth{Year: current.Year(), Month: current.Month()})
		current = current.AddDate(0, 1, 0)
	}
	return months
}
