package cmd

import (
	"io"
	"os"
)

// Writers are looked up through funcs so tests can capture command output.
// They are bound to rootCmd in init to avoid an initialization cycle.
var (
	outWriterFunc = func() io.Writer { return os.Stdout }
	errWriterFunc = func() io.Writer { return os.Stderr }
)

func init() {
	outWriterFunc = rootCmd.OutOrStdout
	errWriterFunc = rootCmd.ErrOrStderr
}

func outWriter() io.Writer {
	return outWriterFunc()
}

func errWriter() io.Writer {
	return errWriterFunc()
}
