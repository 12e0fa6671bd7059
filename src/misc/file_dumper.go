package misc

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// FileDumper writes rendered output to a file, or to stdout when no path is
// given.
type FileDumper struct {
	filepath string
}

func (this *FileDumper) Init(filepath string) {
	this.filepath = filepath
}

func (this *FileDumper) WriteLines(lines []string) {
	err := this.Write(func(writer io.Writer) error {
		for _, line := range lines {
			if _, err := io.WriteString(writer, line+"\n"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
}

// Write hands a buffered writer to render and flushes it afterwards.
func (this *FileDumper) Write(render func(io.Writer) error) error {
	var file *os.File
	if this.filepath == "" {
		file = os.Stdout
	} else {
		if err := os.MkdirAll(filepath.Dir(this.filepath), 0o755); err != nil {
			return err
		}

		created, err := os.Create(this.filepath)
		if err != nil {
			return err
		}
		defer created.Close()
		file = created
	}

	writer := bufio.NewWriter(file)
	if err := render(writer); err != nil {
		return err
	}
	return writer.Flush()
}
