package termui

// Read-eval-print loop for interactive sessions.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/rpnre"
)

var welcomeMessage = "Welcome to %s [V%s]\n"
var promptFormat = "%s> "
var stdprompt = prtxt.FgGreen.Sprint(promptFormat)

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	readline    *readline.Instance
	toolname    string
	version     string
	editmode    string
}

// REPLCommandInterpreter is an interface all interpreters have to implement.
// The REPL handles its administrative commands (help, bye, …) itself and
// delegates every other line of input to the interpreter.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// NewBaseREPL creates a new REPL base object initialized for an interpreter tool
// and a given version.
func NewBaseREPL(toolname, version string) *BaseREPL {
	return &BaseREPL{
		readline: newReadline(toolname),
		toolname: toolname,
		version:  version,
		editmode: "emacs",
	}
}

func newReadline(toolname string) *readline.Instance {
	histfile := filepath.Join(os.TempDir(), toolname+"-repl-history.tmp")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              fmt.Sprintf(stdprompt, toolname),
		HistoryFile:         histfile,
		AutoComplete:        replCompleter,
		InterruptPrompt:     "^C",
		EOFPrompt:           "bye",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
	if err != nil {
		panic(err)
	}
	return rl
}

// Completer-tree for administrative commands
var replCompleter = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("bye"),
	readline.PcItem("mode",
		readline.PcItem("vi"),
		readline.PcItem("emacs"),
	),
	readline.PcItem("setprompt"),
	readline.PcItem("explain"),
)

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.readline.Stdout(), repl.readline.Stderr()
}

// Prompt enters a REPL and executes commands until the user enters "bye"
// or closes the input. If exitOnBye is set, the application terminates
// afterwards.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.readline.Close()
	fmt.Fprintf(repl.readline.Stderr(), welcomeMessage, repl.toolname, repl.version)
	for {
		line, err := repl.readline.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		} else if errors.Is(err, io.EOF) {
			break
		}
		if repl.execute(strings.TrimSpace(line)) {
			break
		}
	}
	if exitOnBye {
		rpnre.Exit(0)
	}
}

// execute dispatches a line of input, either to an administrative command
// or to the interpreter. It returns true if the REPL should terminate.
func (repl *BaseREPL) execute(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	stderr := repl.readline.Stderr()
	switch words[0] {
	case "help":
		repl.displayCommands(stderr)
		if repl.Helper != nil {
			repl.Helper(stderr)
		}
	case "bye":
		io.WriteString(stderr, "> goodbye!\n")
		return true
	case "mode":
		if len(words) > 1 && (words[1] == "vi" || words[1] == "emacs") {
			repl.editmode = words[1]
			repl.readline.SetVimMode(words[1] == "vi")
			return false
		}
		fmt.Fprintf(stderr, "> current input mode: %s\n", repl.editmode)
	case "setprompt":
		prompt := fmt.Sprintf(stdprompt, repl.toolname)
		if len(words) > 1 {
			prompt = strings.TrimSpace(strings.TrimPrefix(line, "setprompt")) + " "
		}
		repl.readline.SetPrompt(prompt)
	default:
		if repl.Interpreter != nil {
			trace().Debugf("call interpreter on: %q", line)
			repl.Interpreter.InterpretCommand(line)
		}
	}
	return false
}

func (repl *BaseREPL) displayCommands(out io.Writer) {
	fmt.Fprintf(out, welcomeMessage, repl.toolname, repl.version)
	io.WriteString(out, "\nThe following commands are available:\n\n")
	io.WriteString(out, "  help               : print this message\n")
	io.WriteString(out, "  bye                : quit application\n")
	io.WriteString(out, "  mode [vi|emacs]    : display or set current editing mode\n")
	io.WriteString(out, "  setprompt [prompt] : set current prompt [to default]\n")
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
