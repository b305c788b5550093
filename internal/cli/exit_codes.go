package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/ariel-frischer/semrel/internal/cli/shared"
	clierrors "github.com/ariel-frischer/semrel/internal/errors"
)

// ExitCode maps an error returned by Execute to a process exit code.
//
//	0  success
//	1  lint or validation failure, unclassified errors
//	3  invalid arguments
//	4  missing dependencies or prerequisites
//	6  release step failure
func ExitCode(err error) int {
	if err == nil {
		return shared.ExitSuccess
	}

	var exitErr *shared.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Argument:
			return shared.ExitInvalidArguments
		case clierrors.Prerequisite:
			return shared.ExitMissingDependency
		}
	}
	return shared.ExitValidationFailed
}

// reportError prints err to w. Silent exit errors print nothing, and errors
// without a category are reported as runtime errors. Colors are used only
// when w is a terminal.
func reportError(w io.Writer, err error) {
	var exitErr *shared.ExitError
	if stderrors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	cliErr := clierrors.AsCLIError(err)
	if cliErr == nil {
		cliErr = clierrors.Wrap(err, clierrors.Runtime)
	}
	if !colorWriter(w) {
		fmt.Fprint(w, clierrors.FormatErrorPlain(cliErr))
		return
	}
	clierrors.FprintError(w, cliErr)
}

func colorWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && !color.NoColor && term.IsTerminal(int(f.Fd()))
}
