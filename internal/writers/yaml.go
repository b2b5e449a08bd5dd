// internal/writers/yaml.go
package writers

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML encodes v as a single YAML document. A broken pipe is reported
// as success.
func WriteYAML(w io.Writer, v any) error {
	bw := bufio.NewWriter(w)
	enc := yaml.NewEncoder(bw)
	enc.SetIndent(2)
	err := enc.Encode(v)
	if err == nil {
		err = enc.Close()
	}
	if err == nil {
		err = bw.Flush()
	}
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
