package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mentor-eval/internal/evaluation"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported report format, use .yaml, .yml or .json")

// Marshal encodes a result in the format implied by the file extension.
func Marshal(res *evaluation.Result, path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Marshal(res)
	case ".json":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

func Write(res *evaluation.Result, path string) error {
	if res == nil {
		return errors.New("no evaluation to export")
	}
	data, err := Marshal(res, path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
