package functions

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadPayload decodes a YAML or JSON request body from file, "-" reads stdin
func ReadPayload[T any](file string) (T, error) {
	var payload T
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return payload, err
		}
		defer f.Close()
		r = f
	}
	if err := yaml.NewDecoder(r).Decode(&payload); err != nil {
		return payload, fmt.Errorf("error decoding %s %w", file, err)
	}
	return payload, nil
}
