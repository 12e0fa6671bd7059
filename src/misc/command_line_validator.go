package misc

import (
	"errors"
	"fmt"
	"strings"

	"flexcluster/src/arch"
	"flexcluster/src/arch/export"
)

type CommandLineValidator struct {
	command_line_parser *CommandLineParser
}

func (this *CommandLineValidator) Init(command_line_parser *CommandLineParser) {
	this.command_line_parser = command_line_parser
}

func (this *CommandLineValidator) Validate() {
	if this.command_line_parser.IntParameter("verbose") < 0 {
		err := errors.New("verbose < 0")
		panic(err)
	}

	format := this.command_line_parser.StringParameter("format")
	if _, ok := export.FormatFromString(format); !ok {
		err := fmt.Errorf("format %s is not supported", format)
		panic(err)
	}

	field := strings.TrimSpace(this.command_line_parser.StringParameter("field"))
	if field != "" {
		if _, ok := arch.NewArchitectureConfig().Lookup(field); !ok {
			err := fmt.Errorf("field %s is not an architecture parameter", field)
			panic(err)
		}
	}
}
