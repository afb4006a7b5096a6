package dic

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/typocheck/hunspellgo/pkg/aff"
	"github.com/typocheck/hunspellgo/pkg/flag"
)

// Load reads a complete .dic file from r, using settings (and AF/AM
// aliases, REP table, casing strategy) from a already-loaded Aff. Reading
// a dictionary can extend a.Rep with REP pairs implied by "ph:" data tags,
// so a must not be shared, read concurrently, with another in-flight load.
func Load(r io.Reader, a *aff.Aff) (*Dic, error) {
	d := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if lineNo == 1 && isCountLine(line) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := readEntry(d, a, line); err != nil {
			return nil, &LoadError{Line: lineNo, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Line: lineNo, Err: err}
	}
	return d, nil
}

func isCountLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	_, err := strconv.Atoi(fields[0])
	return err == nil
}

// readEntry parses one "<stem>/<flags> <data tags>" line and appends the
// resulting Word to d, possibly extending a.Rep with "ph:" implied pairs.
func readEntry(d *Dic, a *aff.Aff, line string) error {
	parts := strings.Fields(line)
	data := make(map[string][]string)
	var wordParts []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]
		switch {
		case i != 0 && strings.Contains(part, ":"):
			tag, content, found := strings.Cut(part, ":")
			if found && content != "" {
				data[tag] = append(data[tag], content)
			}
		case i != 0 && isDigits(part):
			parts = append(parts, a.AM[part]...)
		default:
			wordParts = append(wordParts, part)
		}
	}

	word := strings.Join(wordParts, " ")

	var flagsRaw string
	if strings.HasPrefix(word, "/") {
		flagsRaw = ""
	} else if stem, flags, ok := splitUnescapedSlash(word); ok {
		word, flagsRaw = stem, flags
	}
	word = strings.ReplaceAll(word, `\/`, "/")

	if a.IgnoreTbl != nil {
		word = a.IgnoreTbl.Apply(word)
	}

	var fl flag.Set
	if alias, ok := a.ExpandAlias(flagsRaw); ok {
		fl = flag.NewSet(alias...)
	} else {
		var err error
		fl, err = flag.ParseSet(flagsRaw, a.Syntax)
		if err != nil {
			return err
		}
	}

	captype := a.Casing.Guess(word)
	var lower []string
	if captype != flag.NO {
		lower = a.Casing.Lower(word)
	} else {
		lower = []string{word}
	}

	var altSpellings []string
	for _, pattern := range data["ph"] {
		switch {
		case strings.HasSuffix(pattern, "*"):
			trimmed := pattern[:len(pattern)-1]
			if len(trimmed) > 0 && len(word) > 0 {
				rp, err := aff.NewRepPattern(regexpQuote(trimmed[:len(trimmed)-1]), word[:len(word)-1])
				if err == nil {
					a.Rep = append(a.Rep, rp)
				}
			}
		case strings.Contains(pattern, "->"):
			from, to, _ := strings.Cut(pattern, "->")
			rp, err := aff.NewRepPattern(regexpQuote(from), to)
			if err == nil {
				a.Rep = append(a.Rep, rp)
			}
		default:
			rp, err := aff.NewRepPattern(regexpQuote(pattern), word)
			if err == nil {
				a.Rep = append(a.Rep, rp)
			}
			altSpellings = append(altSpellings, pattern)
		}
	}

	d.Append(&Word{
		Stem:         word,
		Flags:        fl,
		Data:         data,
		AltSpellings: altSpellings,
		CapType:      captype,
	}, lower)

	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// splitUnescapedSlash splits word on the first "/" not preceded by "\",
// mirroring the reference reader's SLASH_REGEXP = (?<!\\)/.
func splitUnescapedSlash(word string) (stem, flags string, ok bool) {
	for i := 0; i < len(word); i++ {
		if word[i] == '/' && (i == 0 || word[i-1] != '\\') {
			return word[:i], word[i+1:], true
		}
	}
	return word, "", false
}

// regexpQuote escapes s for use as a literal match inside a REP pattern's
// regexp, since "ph:" pairs are meant as plain-text substitutions.
func regexpQuote(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '.', '+', '*', '?', '(', ')', '|', '[', ']', '{', '}', '^', '$', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
