package lint

import (
	"bufio"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file discovery.
type ScanStats struct {
	FilesDiscovered int
	FilesScanned    int
	FilesSkipped    int
}

// Line is one source line of a scanned file.
type Line struct {
	File string
	Num  int
	Text string
}

var (
	varRefPattern  = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)`)
	commentPattern = regexp.MustCompile(`^\s*(//|/\*|\*)`)
)

// fileFilter decides which discovered files are skipped: gitignored files
// and the tool's own generated artifacts.
type fileFilter struct {
	gitignore *ignore.GitIgnore
	exclude   map[string]bool
}

func newFileFilter(baseDir string, exclude []string) *fileFilter {
	f := &fileFilter{exclude: make(map[string]bool, len(exclude))}
	for _, p := range exclude {
		f.exclude[path.Clean(filepath.ToSlash(p))] = true
	}
	// No .gitignore is fine.
	if gi, err := ignore.CompileIgnoreFile(filepath.Join(baseDir, ".gitignore")); err == nil {
		f.gitignore = gi
	}
	return f
}

func (f *fileFilter) skip(rel string) bool {
	if f.exclude[rel] {
		return true
	}
	return f.gitignore != nil && f.gitignore.MatchesPath(rel)
}

// discoverFiles expands the glob patterns relative to baseDir. Results are
// slash-separated paths relative to baseDir, deduplicated, in pattern order.
func discoverFiles(baseDir string, patterns []string, filter *fileFilter) ([]string, ScanStats, error) {
	var files []string
	var stats ScanStats
	seen := make(map[string]bool)
	fsys := os.DirFS(baseDir)

	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if filter.skip(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// readLines returns every line of the file at baseDir/rel.
func readLines(fsys fs.FS, rel string) ([]Line, error) {
	file, err := fsys.Open(rel)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []Line
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	num := 0
	for scanner.Scan() {
		num++
		lines = append(lines, Line{File: rel, Num: num, Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// varRef is a custom property referenced through var().
type varRef struct {
	Name   string
	Column int
}

// findVarRefs returns every var(--name) reference on the line whose name
// starts with namePrefix.
func findVarRefs(line, namePrefix string) []varRef {
	var refs []varRef
	for _, m := range varRefPattern.FindAllStringSubmatchIndex(line, -1) {
		name := line[m[2]:m[3]]
		if !strings.HasPrefix(name, namePrefix) {
			continue
		}
		refs = append(refs, varRef{Name: name, Column: m[2] + 1})
	}
	return refs
}

// varSpans returns the byte ranges [start, end) covered by var( ... )
// expressions on the line, including nested parentheses. An unterminated
// expression runs to the end of the line.
func varSpans(line string) [][2]int {
	var spans [][2]int
	for i := 0; i < len(line); {
		idx := strings.Index(line[i:], "var(")
		if idx < 0 {
			break
		}
		start := i + idx
		depth := 0
		end := len(line)
		for j := start + len("var"); j < len(line); j++ {
			if line[j] == '(' {
				depth++
			} else if line[j] == ')' {
				depth--
				if depth == 0 {
					end = j + 1
					break
				}
			}
		}
		spans = append(spans, [2]int{start, end})
		i = end
	}
	return spans
}

func insideSpan(spans [][2]int, pos int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}

// literalPattern matches value case-insensitively.
func literalPattern(value string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(value))
}

// findLiteral returns the byte ranges of pattern matches on the line that
// stand alone: not preceded or followed by an identifier character. Offsets
// index the line as given.
func findLiteral(line string, pattern *regexp.Regexp) [][2]int {
	var matches [][2]int
	for i := 0; i < len(line); {
		loc := pattern.FindStringIndex(line[i:])
		if loc == nil {
			break
		}
		start, end := i+loc[0], i+loc[1]
		if end > start && !isIdentByte(line, start-1) && !isIdentByte(line, end) {
			matches = append(matches, [2]int{start, end})
		}
		_, size := utf8.DecodeRuneInString(line[start:])
		i = start + size
	}
	return matches
}

func isIdentByte(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return c == '-' || c == '_' || c == '#' || (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isComment(line string) bool {
	return commentPattern.MatchString(line)
}
