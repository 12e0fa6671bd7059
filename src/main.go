package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"flexcluster/src/arch"
	"flexcluster/src/arch/export"
	"flexcluster/src/arch/topology"
	"flexcluster/src/misc"
)

func main() {
	command_line_parser := InitCommandLineParser()
	command_line_parser.Parse(os.Args)

	if command_line_parser.IsArgSet("help") {
		fmt.Printf("%s", command_line_parser.StringifyHelpMsgs())
		return
	}

	command_line_validator := new(misc.CommandLineValidator)
	command_line_validator.Init(command_line_parser)
	command_line_validator.Validate()

	if err := run(command_line_parser); err != nil {
		panic(err)
	}
}

func run(command_line_parser *misc.CommandLineParser) error {
	verbose := command_line_parser.IntParameter("verbose")
	config := arch.NewArchitectureConfig()

	if verbose > 0 {
		mesh := topology.BuildMesh(config)
		fmt.Fprintf(
			os.Stderr,
			"[flexarch] %d clusters (%dx%d mesh, %d cores each), %d parameters\n",
			mesh.NumClusters(),
			mesh.Cols,
			mesh.Rows,
			config.NumCorePerCluster,
			len(config.Fields()),
		)
		fmt.Fprintf(os.Stderr, "[flexarch] options: %s\n", strings.ReplaceAll(command_line_parser.StringifyOptions(), "\n", " "))
	}

	file_dumper := new(misc.FileDumper)
	file_dumper.Init(command_line_parser.StringParameter("output"))

	field_name := strings.TrimSpace(command_line_parser.StringParameter("field"))
	if field_name != "" {
		field, ok := config.Lookup(field_name)
		if !ok {
			return fmt.Errorf("field %s is not an architecture parameter", field_name)
		}
		file_dumper.WriteLines([]string{export.FormatValue(field)})
		return nil
	}

	format, ok := export.FormatFromString(command_line_parser.StringParameter("format"))
	if !ok {
		format = export.DefaultFormat()
	}

	err := file_dumper.Write(func(writer io.Writer) error {
		return export.Write(writer, format, config)
	})
	if err != nil {
		return err
	}

	if verbose > 0 && command_line_parser.StringParameter("output") != "" {
		fmt.Fprintf(os.Stderr, "[flexarch] wrote %s to %s\n", format, command_line_parser.StringParameter("output"))
	}
	return nil
}

func InitCommandLineParser() *misc.CommandLineParser {
	command_line_parser := new(misc.CommandLineParser)
	command_line_parser.Init()

	// level 0: only the rendered architecture
	// level 1: level 0 + topology summary and effective options on stderr
	command_line_parser.AddOption(misc.INT, "verbose", "0", "verbosity")

	command_line_parser.AddOption(
		misc.STRING,
		"format",
		string(export.DefaultFormat()),
		"output format (table|json|header)",
	)
	command_line_parser.AddOption(
		misc.STRING,
		"field",
		"",
		"print a single parameter, e.g. soc_register_eoc",
	)
	command_line_parser.AddOption(
		misc.STRING,
		"output",
		"",
		"output file path (stdout when empty)",
	)

	return command_line_parser
}
