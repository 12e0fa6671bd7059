package export

import (
	"encoding/json"
	"fmt"
	"io"

	"flexcluster/src/arch"
)

// WriteJSON emits config as one indented object keyed by parameter name.
func WriteJSON(w io.Writer, config arch.ArchitectureConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode architecture: %w", err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write architecture: %w", err)
	}
	return nil
}
