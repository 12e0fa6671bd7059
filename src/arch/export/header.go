package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"flexcluster/src/arch"
)

const headerGuard = "_FLEX_CLUSTER_ARCH_H_"

// WriteHeader emits config as a C header with one ARCH_<NAME> define per
// parameter, grouped under the subsystem comments.
func WriteHeader(w io.Writer, config arch.ArchitectureConfig) error {
	writer := bufio.NewWriter(w)

	fmt.Fprintf(writer, "#ifndef %s\n", headerGuard)
	fmt.Fprintf(writer, "#define %s\n", headerGuard)

	group := ""
	for _, field := range config.Fields() {
		if field.Group != group {
			group = field.Group
			fmt.Fprintf(writer, "\n//%s\n", groupTitle(group))
		}

		value := formatScalar(field.Kind, field.Value())
		if field.Sequence {
			value = formatSequence(field, "{", ",", "}")
		}
		fmt.Fprintf(writer, "#define %-32s %s\n", DefineName(field.Name), value)
	}

	fmt.Fprintf(writer, "\n#endif // %s\n", headerGuard)

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// DefineName maps a parameter name to its C preprocessor symbol.
func DefineName(name string) string {
	return "ARCH_" + strings.ToUpper(name)
}
