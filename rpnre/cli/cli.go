package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rpnre"
	"github.com/npillmayer/rpnre/evaluator"
	"github.com/npillmayer/rpnre/grammar"
	"github.com/npillmayer/rpnre/rpnre/ui/termui"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const version = "0.1"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rpnre [expression letter degree]",
	Short: "Suffix analysis for regular expressions in reverse-Polish notation",
	Long: `Welcome to rpnre V` + version + `

rpnre decides for a regular expression α in reverse-Polish notation, a letter x
and a degree k, if the language of α contains a word ending in x^k.

Expressions are built from the letters a, b, c, the empty word 1 and the
operators . (concatenation), + (union) and * (Kleene star). A query is given
as three arguments or as a line of input:

    ab+c.* a 2

`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("expected 0 or 3 arguments, have %d", len(args))
		}
		return nil
	},
	SilenceUsage: true,
	Run:          runRpnreCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main(). It will terminate the application.
func Execute() {
	if rootCmd.Execute() != nil {
		rpnre.Exit(2)
	}
	rpnre.Exit(0)
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().BoolP("explain", "e", false, "Print the attributes of every subexpression")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
}

func runRpnreCmd(cmd *cobra.Command, args []string) {
	if configBool("interactive") {
		runRpnreCmdIntpr(cmd, args)
		return
	}
	var q grammar.Query
	var err error
	if len(args) == 3 {
		q, err = grammar.QueryFromArgs(args)
	} else {
		q, err = readQuery(cmd.InOrStdin())
	}
	if err == nil {
		err = answer(q, configBool("explain"), cmd.OutOrStdout())
	}
	if err != nil {
		tracing.Errorf(err.Error())
		fmt.Fprintf(cmd.ErrOrStderr(), "rpnre: %s\n", err.Error())
		rpnre.Exit(2)
	}
}

// readQuery reads a single line of input and parses it as a query.
func readQuery(r io.Reader) (grammar.Query, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return grammar.Query{}, fmt.Errorf("cannot read query: %w", err)
	}
	return grammar.ParseQuery(line)
}

// formatter formats explanations and evaluation results.
var formatter termui.Formatter = Formatter{}

// answer decides a query and writes YES or NO to w, optionally preceded by
// a table of evaluation steps and the resulting attributes.
func answer(q grammar.Query, explain bool, w io.Writer) error {
	var opts []evaluator.Option
	if explain {
		opts = append(opts, evaluator.WithSteps())
	}
	res, ok, err := evaluator.Decide(q, opts...)
	if err != nil {
		return err
	}
	tracer().Debugf("query %s: %v", q, ok)
	if explain {
		if _, err = formatter.Format(explanation{query: q, result: res}, w); err != nil {
			return err
		}
		if _, err = formatter.Format(res, w); err != nil {
			return err
		}
	}
	if ok {
		_, err = io.WriteString(w, "YES\n")
	} else {
		_, err = io.WriteString(w, "NO\n")
	}
	return err
}

func configBool(key string) bool {
	if rpnre.Configuration == nil {
		return false
	}
	return rpnre.Configuration.Bool(key)
}

// --- Interactive mode ------------------------------------------------------

func runRpnreCmdIntpr(cmd *cobra.Command, args []string) {
	tracing.Infof("rpnre interpreter called")
	icmd := &rpnreCmdIntpr{explain: configBool("explain")}
	icmd.BaseREPL = termui.NewBaseREPL("rpnre", version)
	icmd.Interpreter = icmd
	icmd.Helper = func(w io.Writer) {
		io.WriteString(w, `
rpnre will interpret the following statements:

  <expression> <letter> <degree>         : answer YES or NO
  explain <expression> <letter> <degree> : print attributes for every token, then answer

Expressions use the letters a, b, c, the empty word 1 and the postfix
operators . (concatenation), + (union) and * (Kleene star).

`)
	}
	if len(args) == 3 {
		icmd.InterpretCommand(strings.Join(args, " "))
	}
	icmd.Prompt(true)
}

type rpnreCmdIntpr struct {
	*termui.BaseREPL
	explain        bool
	stdout, stderr io.Writer // if nil, the REPL's outputs are used
}

func (icmd *rpnreCmdIntpr) outputs() (io.Writer, io.Writer) {
	if icmd.stdout != nil && icmd.stderr != nil {
		return icmd.stdout, icmd.stderr
	}
	return icmd.Outputs()
}

func (icmd *rpnreCmdIntpr) InterpretCommand(command string) {
	tracer().Debugf("rpnre interpreter: %q", command)
	command = strings.Trim(command, "\x00")
	explain := icmd.explain
	if strings.HasPrefix(command, "explain ") {
		explain = true
		command = strings.TrimPrefix(command, "explain ")
	}
	stdout, stderr := icmd.outputs()
	q, err := grammar.ParseQuery(command)
	if err == nil {
		err = answer(q, explain, stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "interpreter error: %s\n", err.Error())
	}
}
