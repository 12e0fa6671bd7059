package misc

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type OptionType int

const (
	INT OptionType = iota
	STRING
)

type Option struct {
	option_type   OptionType
	name          string
	default_value string
	help_msg      string
}

type CommandLineParser struct {
	options map[string]*Option
	order   []string
	args    map[string]string
	binary  string
}

func (this *CommandLineParser) Init() {
	this.options = make(map[string]*Option)
	this.order = make([]string, 0)
	this.args = make(map[string]string)

	this.AddOption(STRING, "help", "", "print this help message")
}

func (this *CommandLineParser) AddOption(
	option_type OptionType,
	name string,
	default_value string,
	help_msg string,
) {
	if _, found := this.options[name]; found {
		err := fmt.Errorf("option %s is already added", name)
		panic(err)
	}

	if option_type == INT && default_value != "" {
		if _, err := parseInt(default_value); err != nil {
			panic(fmt.Errorf("default value of %s is not an integer: %w", name, err))
		}
	}

	option := &Option{
		option_type:   option_type,
		name:          name,
		default_value: default_value,
		help_msg:      help_msg,
	}

	this.options[name] = option
	this.order = append(this.order, name)
}

// Parse consumes os.Args-style arguments; args[0] is the binary name.
// Options are given as --name value or --name=value.
func (this *CommandLineParser) Parse(args []string) {
	if len(args) == 0 {
		return
	}

	this.binary = args[0]

	for i := 1; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			err := fmt.Errorf("argument %s is not an option", arg)
			panic(err)
		}

		name := strings.TrimPrefix(arg, "--")
		value := ""
		has_value := false
		if idx := strings.Index(name, "="); idx >= 0 {
			name, value = name[:idx], name[idx+1:]
			has_value = true
		}

		option, found := this.options[name]
		if !found {
			err := fmt.Errorf("option %s is not supported", name)
			panic(err)
		}

		if name == "help" {
			this.args[name] = value
			continue
		}

		if !has_value {
			if i+1 >= len(args) {
				err := fmt.Errorf("option %s requires a value", name)
				panic(err)
			}
			i++
			value = args[i]
		}

		if option.option_type == INT {
			if _, err := parseInt(value); err != nil {
				panic(fmt.Errorf("option %s expects an integer: %w", name, err))
			}
		}

		this.args[name] = value
	}
}

func (this *CommandLineParser) IsArgSet(name string) bool {
	_, found := this.args[name]
	return found
}

func (this *CommandLineParser) StringParameter(name string) string {
	option := this.option(name)
	if option.option_type != STRING {
		err := fmt.Errorf("option %s is not a string", name)
		panic(err)
	}

	return this.value(option)
}

func (this *CommandLineParser) IntParameter(name string) int64 {
	option := this.option(name)
	if option.option_type != INT {
		err := fmt.Errorf("option %s is not an integer", name)
		panic(err)
	}

	value, err := parseInt(this.value(option))
	if err != nil {
		panic(err)
	}
	return value
}

func (this *CommandLineParser) StringifyHelpMsgs() string {
	lines := make([]string, 0, len(this.order)+1)
	lines = append(lines, fmt.Sprintf("usage: %s [--option value]...", this.binary))

	for _, name := range this.order {
		option := this.options[name]
		line := fmt.Sprintf("  --%-12s %s", name, option.help_msg)
		if option.default_value != "" {
			line += fmt.Sprintf(" (default: %s)", option.default_value)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n") + "\n"
}

// StringifyArgs lists the explicitly given arguments, sorted by name.
func (this *CommandLineParser) StringifyArgs() string {
	names := make([]string, 0, len(this.args))
	for name := range this.args {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("--%s=%s", name, this.args[name]))
	}
	return strings.Join(pairs, " ")
}

// StringifyOptions lists every option with its effective value.
func (this *CommandLineParser) StringifyOptions() string {
	pairs := make([]string, 0, len(this.order))
	for _, name := range this.order {
		if name == "help" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s=%s", name, this.value(this.options[name])))
	}
	return strings.Join(pairs, "\n")
}

func (this *CommandLineParser) option(name string) *Option {
	option, found := this.options[name]
	if !found {
		err := fmt.Errorf("option %s is not added", name)
		panic(err)
	}
	return option
}

func (this *CommandLineParser) value(option *Option) string {
	if value, found := this.args[option.name]; found {
		return value
	}
	return option.default_value
}

func parseInt(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("empty integer")
	}
	return strconv.ParseInt(value, 0, 64)
}
