package simulator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pizzadesk/pizzadesk/internal/models"
)

// OutputDestination receives the events the session emits, one JSON message
// per confirmed order. The archive stays in-memory either way; sinks are
// observation only.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))

	_, err := os.Stdout.Write([]byte(output))
	if err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	_ = os.Stdout.Sync()

	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}

// JSONOutput appends each message as a JSON line to <basePath>/<topic>.jsonl.
type JSONOutput struct {
	basePath string
	files    map[string]*os.File
}

func NewJSONOutput(basePath string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	file, ok := j.files[topic]
	if !ok {
		if err := os.MkdirAll(j.basePath, 0o755); err != nil {
			return fmt.Errorf("failed to create output folder %s: %w", j.basePath, err)
		}
		filename := filepath.Join(j.basePath, topic+".jsonl")
		created, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create file for topic %s: %w", topic, err)
		}
		j.files[topic] = created
		file = created
	}

	if _, err := file.Write(append(msg, '\n')); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	return nil
}

func (j *JSONOutput) Close() error {
	var firstErr error
	for topic, file := range j.files {
		if err := file.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close file for topic %s: %w", topic, err)
		}
	}
	j.files = make(map[string]*os.File)
	return firstErr
}

func determineOutputDestination(config *models.Config) OutputDestination {
	if config.OutputFolder != "" {
		return NewJSONOutput(config.OutputFolder)
	}
	return &ConsoleOutput{}
}
