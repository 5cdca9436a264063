package inserter

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/siyuan-infoblox/java-import-add/pkg/console"
	"github.com/siyuan-infoblox/java-import-add/pkg/errors"
	"github.com/siyuan-infoblox/java-import-add/pkg/utils"
)

const (
	importPrefix  = "import "
	packagePrefix = "package "
)

type InserterConfig struct {
	Spec      ImportSpec // the import to insert
	DryRun    bool       // preview changes without writing
	Recursive bool       // expand directory arguments into the Java files beneath them
	Verbose   bool       // print per-directory counts and a final summary
}

// inserter handles the import insertion logic
type inserter struct {
	config  InserterConfig
	console *console.Console
}

// New creates a new inserter with the given configuration, reporting
// through cons
func New(config InserterConfig, cons *console.Console) *inserter {
	return &inserter{
		config:  config,
		console: cons,
	}
}

func (ins *inserter) getSpec() ImportSpec {
	return ins.config.Spec
}

func (ins *inserter) getDryRun() bool {
	return ins.config.DryRun
}

func (ins *inserter) getRecursive() bool {
	return ins.config.Recursive
}

func (ins *inserter) getVerbose() bool {
	return ins.config.Verbose
}

// HasImport reports whether content already contains line as a whole line,
// ignoring surrounding whitespace.
func HasImport(content, line string) bool {
	target := strings.TrimSpace(line)
	for _, raw := range strings.Split(content, "\n") {
		if strings.TrimSpace(raw) == target {
			return true
		}
	}
	return false
}

// findPositions returns the 1-based line numbers of the last import
// declaration and the first package declaration, or 0 when absent. Matching
// is a plain prefix check on the whitespace-trimmed line, so commented-out
// declarations count too; that naivety is intentional.
func findPositions(lines []string) (lastImport, packageLine int) {
	for i, raw := range lines {
		s := strings.TrimLeftFunc(raw, unicode.IsSpace)
		if strings.HasPrefix(s, importPrefix) {
			lastImport = i + 1
		}
		if strings.HasPrefix(s, packagePrefix) && packageLine == 0 {
			packageLine = i + 1
		}
	}
	return lastImport, packageLine
}

// InsertImport returns content with line added at the canonical position:
// after the last import declaration, else after the package declaration,
// else at the very top. The trailing-newline convention of content is
// preserved, and untouched lines are carried over byte-for-byte.
func InsertImport(content, line string) string {
	trailingNL := strings.HasSuffix(content, "\n")
	body := strings.TrimSuffix(content, "\n")
	lines := strings.Split(body, "\n")

	lastImport, packageLine := findPositions(lines)

	insertAfter := lastImport
	if insertAfter == 0 {
		insertAfter = packageLine
	}
	if insertAfter == 0 {
		// No anchor line at all: the import goes on top, separated by a
		// blank line from the original content.
		return line + "\n\n" + content
	}

	out := make([]string, 0, len(lines)+2)
	for i, raw := range lines {
		out = append(out, raw)
		if i+1 != insertAfter {
			continue
		}
		out = append(out, line)
		// First import in the file: keep one blank line between it and
		// the declarations that follow, unless one is already there.
		if lastImport == 0 && !isBlank(lines, i+1) {
			out = append(out, "")
		}
	}

	joined := strings.Join(out, "\n")
	if trailingNL {
		joined += "\n"
	}
	return joined
}

// isBlank reports whether lines[idx] exists and is empty or whitespace-only.
func isBlank(lines []string, idx int) bool {
	if idx >= len(lines) {
		return false
	}
	return strings.TrimSpace(lines[idx]) == ""
}

// status classifies the outcome of processing one path.
type status int

const (
	statusAdded status = iota
	statusPresent
	statusSkipped
)

// ProcessFiles inserts the configured import into each path sequentially.
// Skip conditions are warnings and never fail the run; read or write
// failures are counted and surfaced as a single error once every path has
// been attempted.
func (ins *inserter) ProcessFiles(paths []string) error {
	files, failed := ins.expandPaths(paths)
	added, present, skipped := 0, 0, 0

	for _, path := range files {
		st, err := ins.processFile(path)
		if err != nil {
			ins.console.Error(errors.ErrMsgProcessFailed, path, err)
			failed++
			continue
		}
		switch st {
		case statusAdded:
			added++
		case statusPresent:
			present++
		case statusSkipped:
			skipped++
		}
	}

	if ins.getVerbose() {
		ins.console.Info(errors.InfoMsgSummary, added+present+skipped, added, present, skipped)
	}

	if failed > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, failed)
	}
	return nil
}

// expandPaths resolves directory arguments into the Java files beneath them
// when recursive mode is on. Everything else passes through untouched and
// gets vetted per-file later.
func (ins *inserter) expandPaths(paths []string) ([]string, int) {
	if !ins.getRecursive() {
		return paths, 0
	}

	var expanded []string
	failed := 0
	for _, path := range paths {
		isDir, err := utils.IsDirectory(path)
		if err != nil || !isDir {
			expanded = append(expanded, path)
			continue
		}

		javaFiles, err := utils.FindJavaFiles(path)
		if err != nil {
			ins.console.Error(errors.ErrMsgProcessFailed, path, fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindJava, err))
			failed++
			continue
		}
		if len(javaFiles) == 0 {
			ins.console.Info(errors.InfoMsgNoJavaFilesFound, path)
			continue
		}
		if ins.getVerbose() {
			ins.console.Info(errors.InfoMsgFoundJavaFiles, len(javaFiles), path)
		}
		expanded = append(expanded, javaFiles...)
	}
	return expanded, failed
}

// processFile runs the insertion on a single path. Skip conditions warn and
// return statusSkipped; only real I/O failures return an error.
func (ins *inserter) processFile(path string) (status, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		ins.console.Warn(errors.WarnMsgNotAFile, path)
		return statusSkipped, nil
	}
	if !utils.IsJavaFile(path) {
		ins.console.Warn(errors.WarnMsgNonJavaFile, path)
		return statusSkipped, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return statusSkipped, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}
	content := string(data)
	line := ins.getSpec().Line()

	if HasImport(content, line) {
		ins.console.Info(errors.InfoMsgAlreadyPresent, path)
		return statusPresent, nil
	}

	updated := InsertImport(content, line)

	if ins.getDryRun() {
		ins.console.Info(errors.InfoMsgWouldAdd, line, path)
		ins.printDiff(content, updated)
		return statusAdded, nil
	}

	if err := utils.WriteFileAtomic(path, []byte(updated), info.Mode().Perm()); err != nil {
		return statusSkipped, fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	ins.console.OK(errors.OkMsgAdded, line, path)
	return statusAdded, nil
}
