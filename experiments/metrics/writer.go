package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type SessionRecord struct {
	ID int
	SessionMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold one run's files.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSessionRecords(records []SessionRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "sessions.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create session records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	header := []string{
		"id", "session", "seed", "mission", "player", "completed", "stalled", "turns", "owned",
		"attacks", "attacker_wins", "conquests", "rejected", "attacker_lost", "defender_lost", "duration",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write session records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.SessionID,
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Mission),
			record.Player,
			strconv.FormatBool(record.Completed),
			strconv.FormatBool(record.Stalled),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.OwnedAtFinish),
			strconv.Itoa(record.Attacks),
			strconv.Itoa(record.AttackerWins),
			strconv.Itoa(record.Conquests),
			strconv.Itoa(record.Rejected),
			strconv.Itoa(record.AttackerLost),
			strconv.Itoa(record.DefenderLost),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write session record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush session records: %w", err)
	}
	return nil
}
