package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ScriptReport summarises a batch run.
type ScriptReport struct {
	Executed int  // commands dispatched, failures included
	Failed   int  // commands that returned an error
	Exited   bool // an exit command stopped the run early
}

// Err returns an error when any command failed.
func (r ScriptReport) Err() error {
	if r.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d commands failed", r.Failed, r.Executed)
}

// RunScript executes one command per line of r. Blank lines and lines
// starting with # are skipped. Failures are counted and the run continues;
// an exit command ends it.
func (e *Executor) RunScript(r io.Reader) (ScriptReport, error) {
	var report ScriptReport
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isComment(line) {
			continue
		}

		e.printer.Println(Prompt + line)
		report.Executed++
		result, err := e.Execute(line)
		if err != nil {
			report.Failed++
			e.sink.Debug("Script command failed", "line", lineNo, "error", err)
		}
		if result.Exit {
			report.Exited = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("failed to read script: %w", err)
	}
	return report, nil
}

// RunScriptFile executes the script at path.
func (e *Executor) RunScriptFile(path string) (ScriptReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return ScriptReport{}, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	e.sink.Info("Running script", "script", path)
	report, err := e.RunScript(f)
	if err != nil {
		return report, err
	}
	e.sink.Info("Script finished", "script", path, "executed", report.Executed, "failed", report.Failed)
	return report, nil
}
