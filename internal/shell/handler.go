package shell

import (
	"strings"

	"github.com/abiosoft/ishell/v2"
)

// Prompt is shown before every interactive input line and echoed in batch output.
const Prompt = "noknock> "

// REPL is the interactive shell. Every line goes to the Executor.
type REPL struct {
	exec  *Executor
	shell *ishell.Shell
}

// NewREPL creates an ishell-backed REPL around exec.
func NewREPL(exec *Executor) *REPL {
	r := &REPL{exec: exec, shell: ishell.New()}
	r.shell.SetPrompt(Prompt)

	// ishell's own exit, help and clear would shadow ours.
	r.shell.DeleteCmd("exit")
	r.shell.DeleteCmd("help")
	r.shell.DeleteCmd("clear")

	// Registered words give tab completion; dispatch stays with the Executor.
	for _, word := range exec.Words() {
		r.shell.AddCmd(&ishell.Cmd{
			Name: word,
			Func: r.processCommand,
		})
	}
	r.shell.NotFound(r.processInput)
	return r
}

// Run prints banner and reads input until exit or end of input.
func (r *REPL) Run(banner string) {
	if banner != "" {
		r.shell.Println(banner)
	}
	r.shell.Run()
	r.shell.Close()
}

func (r *REPL) processCommand(c *ishell.Context) {
	line := c.Cmd.Name
	if len(c.Args) > 0 {
		line += " " + strings.Join(c.Args, " ")
	}
	if r.HandleLine(line) {
		c.Stop()
	}
}

func (r *REPL) processInput(c *ishell.Context) {
	if r.HandleLine(strings.Join(c.RawArgs, " ")) {
		c.Stop()
	}
}

// HandleLine dispatches one line and reports whether the REPL should stop.
func (r *REPL) HandleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || isComment(line) {
		return false
	}
	result, _ := r.exec.Execute(line)
	return result.Exit
}
