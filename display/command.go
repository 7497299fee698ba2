package display

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/llmdiagram/errors"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ShouldOutputJSON determines if a command should output JSON based on its flags
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	// Check if --json flag was explicitly set on the command itself
	if cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	// Check global --json flag
	globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json")
	return globalFlag
}

// OutputJSON marshals v with MarshalJSON and writes it to w
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// OutputYAML marshals v as YAML and writes it to w
func OutputYAML(w io.Writer, v interface{}) error {
	data, err := MarshalYAML(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal YAML")
	}
	_, err = w.Write(data)
	return err
}

// Output writes v to w in format (json or yaml)
func Output(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatJSON:
		return OutputJSON(w, v)
	case FormatYAML:
		return OutputYAML(w, v)
	}
	return errors.WithHint(errors.Newf("unknown output format %q", format), "use json or yaml")
}
