package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/java-import-add/pkg/console"
	"github.com/siyuan-infoblox/java-import-add/pkg/errors"
	"github.com/siyuan-infoblox/java-import-add/pkg/inserter"
	"github.com/siyuan-infoblox/java-import-add/pkg/lang"
)

const (
	UseDescription   = "jia [flags] FQN JAVA_FILE..."
	ShortDescription = "Java import adder - A tool to add class and static imports to Java sources"
	LongDescription  = `jia is a command-line tool that inserts an import statement into one or
more Java source files.

It builds the canonical declaration for a fully-qualified name:

  import com.example.SomeClass;
  import static com.example.Util.someMember;   (with --static)

and inserts it after the last existing import, after the package
declaration when the file has no imports yet, or at the very top of the
file otherwise. Files that already contain the exact import line are left
untouched, so repeated runs are safe.

FQN is taken verbatim; no classpath lookup or syntax validation is
performed. Paths that are missing or not Java files are skipped with a
warning. With --recursive, directory arguments expand to the .java files
beneath them.`
)

var (
	staticImport bool
	dryRun       bool
	recursive    bool
	quiet        bool
	verbose      bool
	forceColor   bool
	noColor      bool
	showVersion  bool
	versionStr   string
)

var rootCmd = &cobra.Command{
	Use:           UseDescription,
	Short:         ShortDescription,
	Long:          LongDescription,
	Args:          validateArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&staticImport, "static", false, "Insert a static member import (import static <fqn>;)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would change without writing any file")
	rootCmd.PersistentFlags().BoolVarP(&recursive, "recursive", "r", false, "Expand directory arguments to the .java files beneath them")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-file progress output; warnings and errors still print")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print extra details and a processing summary")
	rootCmd.PersistentFlags().BoolVar(&forceColor, "color", false, "Force colored output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd())
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need the FQN or file arguments
	if showVersion {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Printf("Java Import Add (JIA) version %s\n", versionStr)
		return nil
	}

	if noColor {
		color.NoColor = true
	} else if forceColor {
		color.NoColor = false
	}

	cons := console.New(os.Stdout, os.Stderr)
	cons.SetQuiet(quiet)

	if len(args) < 2 {
		cons.Error(errors.ErrMsgNoJavaFiles)
		return errors.ErrNoFilePaths
	}

	spec := buildSpec(args[0], staticImport)
	if verbose && spec.Kind == inserter.ClassImport && lang.IsImplicitType(spec.FQN) {
		cons.Info(errors.InfoMsgImplicitType, spec.FQN)
	}

	ins := inserter.New(inserter.InserterConfig{
		Spec:      spec,
		DryRun:    dryRun,
		Recursive: recursive,
		Verbose:   verbose,
	}, cons)
	return ins.ProcessFiles(args[1:])
}

// buildSpec maps the positional FQN and the --static flag to an import spec.
func buildSpec(fqn string, static bool) inserter.ImportSpec {
	if static {
		return inserter.NewStaticImport(fqn)
	}
	return inserter.NewClassImport(fqn)
}

func Execute(version string) error {
	versionStr = version
	err := rootCmd.Execute()
	if err != nil && !stderrors.Is(err, errors.ErrNoFilePaths) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
