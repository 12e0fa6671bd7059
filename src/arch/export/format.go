package export

import (
	"errors"
	"fmt"
	"io"

	"flexcluster/src/arch"
)

// Format selects how an architecture description is rendered.
type Format string

const (
	// FormatTable is an aligned, human-readable listing.
	FormatTable Format = "table"
	// FormatJSON is an object keyed by parameter name, the shape simulator
	// configurations look values up in.
	FormatJSON Format = "json"
	// FormatHeader is a C header of ARCH_* defines for the SDK.
	FormatHeader Format = "header"
)

var ErrUnknownFormat = errors.New("unknown output format")

// DefaultFormat returns the format used when none is requested.
func DefaultFormat() Format {
	return FormatTable
}

// FormatFromString converts an arbitrary string into a Format. When the
// provided value is unknown the bool return will be false.
func FormatFromString(value string) (Format, bool) {
	switch value {
	case string(FormatTable):
		return FormatTable, true
	case string(FormatJSON):
		return FormatJSON, true
	case string(FormatHeader):
		return FormatHeader, true
	default:
		return "", false
	}
}

// Write renders config to w in the requested format.
func Write(w io.Writer, format Format, config arch.ArchitectureConfig) error {
	switch format {
	case FormatTable:
		return WriteTable(w, config)
	case FormatJSON:
		return WriteJSON(w, config)
	case FormatHeader:
		return WriteHeader(w, config)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

var groupTitles = map[string]string{
	"cluster": "Cluster",
	"redmule": "RedMulE",
	"mtxtran": "MtxTran",
	"vecteng": "VectEng",
	"idma":    "iDMA",
	"hbm":     "HBM",
	"noc":     "NoC",
	"system":  "System",
	"sync":    "Synchronization",
}

func groupTitle(group string) string {
	if title, ok := groupTitles[group]; ok {
		return title
	}
	return group
}

// FormatValue renders a field the way it is written down in the address map:
// addresses and sizes as 32-bit hex, counts in decimal, sequences bracketed.
func FormatValue(field arch.Field) string {
	if field.Sequence {
		return formatSequence(field, "[", ", ", "]")
	}
	return formatScalar(field.Kind, field.Value())
}

func formatScalar(kind arch.Kind, value int64) string {
	switch kind {
	case arch.KindAddress, arch.KindSize:
		return fmt.Sprintf("0x%08x", value)
	default:
		return fmt.Sprintf("%d", value)
	}
}

func formatSequence(field arch.Field, open, sep, end string) string {
	text := open
	for idx, value := range field.Values {
		if idx > 0 {
			text += sep
		}
		text += formatScalar(field.Kind, value)
	}
	return text + end
}
