package aff

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/typocheck/hunspellgo/pkg/flag"
	"github.com/typocheck/hunspellgo/pkg/strutil"
)

// outdated directive spellings still seen in the wild.
var directiveSynonyms = map[string]string{
	"PSEUDOROOT":    "NEEDAFFIX",
	"COMPOUNDLAST":  "COMPOUNDEND",
}

var directiveNamePattern = regexp.MustCompile(`^[A-Z]+$`)

// Load reads a complete .aff file from r and returns its parsed settings.
// Input is assumed already UTF-8 regardless of the file's own SET
// directive: transcoding legacy single-byte encodings (ISO8859-*,
// Windows-1252, ...) is left to the caller, since the dictionary data
// model only ever operates on decoded text.
func Load(r io.Reader) (*Aff, error) {
	a := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	ld := &loader{aff: a, sc: sc}
	for sc.Scan() {
		ld.lineNo++
		if err := ld.readLine(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, wrapLoadError(ld.lineNo, "reading aff file", err)
	}

	a.Finalize()
	return a, nil
}

type loader struct {
	aff    *Aff
	sc     *bufio.Scanner
	lineNo int
}

func (ld *loader) nextField() (string, bool) {
	if !ld.sc.Scan() {
		return "", false
	}
	ld.lineNo++
	return ld.sc.Text(), true
}

// readTableRows consumes count further lines, each split on whitespace
// with its leading directive-name field dropped.
func (ld *loader) readTableRows(count int) ([][]string, error) {
	rows := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		line, ok := ld.nextField()
		if !ok {
			return nil, newLoadError(ld.lineNo, "unexpected end of file while reading table")
		}
		fields := strings.Fields(line)
		if len(fields) < 1 {
			return nil, newLoadError(ld.lineNo, "blank line in table")
		}
		rows = append(rows, fields[1:])
	}
	return rows, nil
}

func (ld *loader) parseFlags(raw string) (flag.Set, error) {
	if alias, ok := ld.aff.AF[raw]; ok {
		return flag.NewSet(alias...), nil
	}
	return flag.ParseSet(raw, ld.aff.Syntax)
}

func (ld *loader) readLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name := fields[0]
	if !directiveNamePattern.MatchString(name) {
		return nil
	}
	if syn, ok := directiveSynonyms[name]; ok {
		name = syn
	}
	args := fields[1:]

	a := ld.aff

	switch name {
	case "SET":
		if len(args) > 0 {
			a.Encoding = args[0]
		}
	case "FLAG":
		if len(args) == 0 {
			return nil
		}
		syn, err := flag.ParseSyntax(args[0])
		if err != nil {
			return wrapLoadError(ld.lineNo, "FLAG", err)
		}
		a.Syntax = syn
	case "LANG":
		if len(args) > 0 {
			a.Lang = args[0]
		}
	case "WORDCHARS":
		if len(args) > 0 {
			a.WordChars = args[0]
		}
	case "IGNORE":
		if len(args) > 0 {
			a.IgnoreTbl = strutil.NewIgnore(args[0])
		}
	case "CHECKSHARPS":
		a.CheckSharps = true
	case "COMPLEXPREFIXES":
		a.ComplexPrefixes = true
	case "FULLSTRIP":
		a.FullStrip = true
	case "NOSPLITSUGS":
		a.NoSplitSugs = true
	case "ONLYMAXDIFF":
		a.OnlyMaxDiff = true
	case "CHECKCOMPOUNDCASE":
		a.CheckCompoundCase = true
	case "CHECKCOMPOUNDDUP":
		a.CheckCompoundDup = true
	case "CHECKCOMPOUNDREP":
		a.CheckCompoundRep = true
	case "CHECKCOMPOUNDTRIPLE":
		a.CheckCompoundTriple = true
	case "SIMPLIFIEDTRIPLE":
		a.SimplifiedTriple = true

	case "FORBIDDENWORD":
		return ld.setFlag(&a.ForbiddenWord, args)
	case "NOSUGGEST":
		return ld.setFlag(&a.NoSuggest, args)
	case "KEEPCASE":
		return ld.setFlag(&a.KeepCase, args)
	case "NEEDAFFIX":
		return ld.setFlag(&a.NeedAffix, args)
	case "CIRCUMFIX":
		return ld.setFlag(&a.Circumfix, args)
	case "WARN":
		return ld.setFlag(&a.Warn, args)
	case "COMPOUNDFLAG":
		return ld.setFlag(&a.CompoundFlag, args)
	case "COMPOUNDBEGIN":
		return ld.setFlag(&a.CompoundBegin, args)
	case "COMPOUNDMIDDLE":
		return ld.setFlag(&a.CompoundMiddle, args)
	case "COMPOUNDEND":
		return ld.setFlag(&a.CompoundLast, args)
	case "ONLYINCOMPOUND":
		return ld.setFlag(&a.OnlyInCompound, args)
	case "COMPOUNDPERMITFLAG":
		return ld.setFlag(&a.CompoundPermitFlag, args)
	case "COMPOUNDFORBIDFLAG":
		return ld.setFlag(&a.CompoundForbidFlag, args)
	case "COMPOUNDROOT":
		return ld.setFlag(&a.CompoundRoot, args)
	case "FORCEUCASE":
		return ld.setFlag(&a.ForceUCase, args)

	case "MAXDIFF":
		return ld.setInt(&a.MaxDiff, args)
	case "MAXNGRAMSUGS":
		return ld.setInt(&a.MaxNgramSugs, args)
	case "MAXCPDSUGS":
		return ld.setInt(&a.MaxCpdSugs, args)
	case "COMPOUNDMIN":
		return ld.setInt(&a.CompoundMin, args)
	case "COMPOUNDWORDMAX":
		return ld.setInt(&a.CompoundWordMax, args)

	case "KEY":
		if len(args) > 0 {
			a.Key = args[0]
		}
	case "TRY":
		if len(args) > 0 {
			a.Try = args[0]
		}

	case "BREAK":
		n, err := ld.count(args)
		if err != nil {
			return err
		}
		rows, err := ld.readTableRows(n)
		if err != nil {
			return err
		}
		a.Break = a.Break[:0]
		for _, row := range rows {
			if len(row) == 0 {
				continue
			}
			a.Break = append(a.Break, strutil.NewBreakPattern(row[0]))
		}

	case "COMPOUNDRULE":
		n, err := ld.count(args)
		if err != nil {
			return err
		}
		rows, err := ld.readTableRows(n)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if len(row) == 0 {
				continue
			}
			rule, err := NewCompoundRule(row[0])
			if err != nil {
				return wrapLoadError(ld.lineNo, "COMPOUNDRULE", err)
			}
			a.CompoundRules = append(a.CompoundRules, rule)
		}

	case "ICONV", "OCONV":
		n, err := ld.count(args)
		if err != nil {
			return err
		}
		rows, err := ld.readTableRows(n)
		if err != nil {
			return err
		}
		var pairs []strutil.ConvPair
		for _, row := range rows {
			if len(row) < 2 {
				continue
			}
			pairs = append(pairs, strutil.ConvPair{From: row[0], To: row[1]})
		}
		if name == "ICONV" {
			a.ICONV = strutil.NewConvTable(pairs)
		} else {
			a.OCONV = strutil.NewConvTable(pairs)
		}

	case "REP":
		n, err := ld.count(args)
		if err != nil {
			return err
		}
		rows, err := ld.readTableRows(n)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if len(row) < 2 {
				continue
			}
			rp, err := NewRepPattern(row[0], row[1])
			if err != nil {
				return wrapLoadError(ld.lineNo, "REP", err)
			}
			a.Rep = append(a.Rep, rp)
		}

	case "MAP":
		n, err := ld.count(args)
		if err != nil {
			return err
		}
		rows, err := ld.readTableRows(n)
		if err != nil {
			return err
		}
		groupPattern := regexp.MustCompile(`\([^()]+?\)|[^()]`)
		for _, row := range rows {
			if len(row) == 0 {
				continue
			}
			var group []string
			for _, m := range groupPattern.FindAllString(row[0], -1) {
				group = append(group, strings.Trim(m, "()"))
			}
			a.Map = append(a.Map, group)
		}

	case "PFX", "SFX":
		if len(args) < 3 {
			return newLoadError(ld.lineNo, "%s: expected flag, crossproduct, count", name)
		}
		flagName, crossProduct, countStr := args[0], args[1], args[2]
		n, err := strconv.Atoi(countStr)
		if err != nil {
			return wrapLoadError(ld.lineNo, name+" count", err)
		}
		rows, err := ld.readTableRows(n)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if err := ld.makeAffix(name, flag.Flag(flagName), crossProduct == "Y", row); err != nil {
				return err
			}
		}

	case "CHECKCOMPOUNDPATTERN":
		n, err := ld.count(args)
		if err != nil {
			return err
		}
		rows, err := ld.readTableRows(n)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if len(row) < 2 {
				continue
			}
			a.CheckCompoundPattern = append(a.CheckCompoundPattern, NewCompoundPattern(row[0], row[1]))
		}

	case "AF":
		n, err := ld.count(args)
		if err != nil {
			return err
		}
		rows, err := ld.readTableRows(n)
		if err != nil {
			return err
		}
		for i, row := range rows {
			if len(row) == 0 {
				continue
			}
			fl, err := flag.Parse(row[0], a.Syntax)
			if err != nil {
				return wrapLoadError(ld.lineNo, "AF", err)
			}
			a.AF[strconv.Itoa(i+1)] = fl
		}

	case "AM":
		n, err := ld.count(args)
		if err != nil {
			return err
		}
		rows, err := ld.readTableRows(n)
		if err != nil {
			return err
		}
		for i, row := range rows {
			a.AM[strconv.Itoa(i+1)] = row
		}

	case "COMPOUNDSYLLABLE":
		// vowel-counting compound-length rule; not part of this
		// implementation's compounding model, accepted and ignored.

	case "PHONE":
		n, err := ld.count(args)
		if err != nil {
			return err
		}
		rows, err := ld.readTableRows(n)
		if err != nil {
			return err
		}
		var table [][2]string
		for _, row := range rows {
			if len(row) < 2 {
				continue
			}
			repl := row[1]
			if repl == "_" {
				repl = ""
			}
			table = append(table, [2]string{row[0], repl})
		}
		pt, err := strutil.NewPhonetTable(table)
		if err != nil {
			return wrapLoadError(ld.lineNo, "PHONE", err)
		}
		a.Phone = pt

	case "SUBSTANDARD", "SYLLABLENUM", "SUGSWITHDOTS", "COMPOUNDMORESUFFIXES":
		// recognized but not used by this implementation's lookup/suggest.
	}

	return nil
}

func (ld *loader) count(args []string) (int, error) {
	if len(args) == 0 {
		return 0, newLoadError(ld.lineNo, "expected a count")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, wrapLoadError(ld.lineNo, "expected a count", err)
	}
	return n, nil
}

func (ld *loader) setFlag(dst *Flag, args []string) error {
	if len(args) == 0 {
		return newLoadError(ld.lineNo, "expected a flag value")
	}
	fl, err := ld.parseFlags(args[0])
	if err != nil {
		return wrapLoadError(ld.lineNo, "flag value", err)
	}
	for f := range fl {
		*dst = f
		break
	}
	return nil
}

func (ld *loader) setInt(dst *int, args []string) error {
	n, err := ld.count(args)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

// makeAffix builds a Prefix or Suffix from one PFX/SFX table row:
// flag strip add[/flags] [condition].
func (ld *loader) makeAffix(kind string, flagName Flag, crossProduct bool, row []string) error {
	if len(row) < 3 {
		return newLoadError(ld.lineNo, "%s: expected flag, strip and add fields", kind)
	}
	strip, addField := row[1], row[2]
	condition := ""
	if len(row) > 3 {
		condition = row[3]
	}

	add, flagsRaw, _ := strings.Cut(addField, "/")
	if ld.aff.IgnoreTbl != nil {
		add = ld.aff.IgnoreTbl.Apply(add)
	}
	if strip == "0" {
		strip = ""
	}
	if add == "0" {
		add = ""
	}

	fl, err := ld.parseFlags(flagsRaw)
	if err != nil {
		return wrapLoadError(ld.lineNo, kind+" result flags", err)
	}

	a := ld.aff
	if kind == "PFX" {
		p, err := NewPrefix(flagName, crossProduct, strip, add, condition, fl)
		if err != nil {
			return wrapLoadError(ld.lineNo, "PFX", err)
		}
		a.Prefixes[flagName] = append(a.Prefixes[flagName], p)
		a.PrefixCrossProduct[flagName] = crossProduct
		return nil
	}
	s, err := NewSuffix(flagName, crossProduct, strip, add, condition, fl)
	if err != nil {
		return wrapLoadError(ld.lineNo, "SFX", err)
	}
	a.Suffixes[flagName] = append(a.Suffixes[flagName], s)
	a.SuffixCrossProduct[flagName] = crossProduct
	return nil
}
