package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"flexcluster/src/arch"
)

// WriteTable emits config as an aligned listing. Sizes carry a second,
// human-readable column.
func WriteTable(w io.Writer, config arch.ArchitectureConfig) error {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "GROUP\tNAME\tKIND\tVALUE\tSIZE")
	for _, field := range config.Fields() {
		human := ""
		if size, ok := field.ByteSize(); ok {
			human = size.String()
		}
		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\t%s\n",
			groupTitle(field.Group),
			field.Name,
			field.Kind,
			FormatValue(field),
			human,
		)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
