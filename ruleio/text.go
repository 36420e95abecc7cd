package ruleio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/ffsets/grammar"
)

// ReadText reads rules in line format "NUM <LHS> -> SYM …".
func ReadText(r io.Reader) ([]*grammar.Rule, error) {
	rl := grammar.NewRuleList()
	sc := newTextScanner(r)
	for sc.Next() {
		tok := sc.Token
		if err := rl.Add(tok.LHS, tok.RHS, tok.Num); err != nil {
			return nil, fmt.Errorf("line %d: %w", tok.LineNo, err)
		}
	}
	if sc.LastError != nil {
		return nil, sc.LastError
	}
	return rl.Rules(), nil
}

// --- Line level scanner ----------------------------------------------------

// lineToken subsumes the properties of a rule line.
type lineToken struct {
	LineNo int      // line of the rule within the input source
	Num    int      // rule number
	LHS    string   // left hand side
	RHS    []string // right hand side, possibly empty
	Error  error    // error condition, if any
}

func (token *lineToken) String() string {
	return fmt.Sprintf("rule[line %d #%d %s -> %v]", token.LineNo, token.Num, token.LHS, token.RHS)
}

// textScanner is a line-level scanner, operating by calling scanning steps
// in a chain. Each step consumes fields of the current line and branches
// out to the subsequent step.
type textScanner struct {
	lines     *bufio.Scanner
	lineNo    int
	fields    []string
	Token     *lineToken // last token produced by scanner
	LastError error      // last error, if any
}

// A scanner step will return the next step in the chain, or nil to stop/accept.
type scannerStep func(*lineToken) (*lineToken, scannerStep)

var arrows = map[string]bool{"->": true, "-->": true, "→": true, "::=": true}

func newTextScanner(r io.Reader) *textScanner {
	return &textScanner{lines: bufio.NewScanner(r)}
}

// Next reads the next rule line. It returns false at the end of input or
// on error, with the error stored in LastError.
func (sc *textScanner) Next() bool {
	if sc.LastError != nil || !sc.nextLine() {
		return false
	}
	sc.Token = &lineToken{LineNo: sc.lineNo}
	var step scannerStep = sc.scanRuleNumber
	for step != nil {
		sc.Token, step = step(sc.Token)
		if sc.Token.Error != nil {
			sc.LastError = sc.Token.Error
			return false
		}
	}
	T().Debugf("scanned %s", sc.Token)
	return true
}

// nextLine skips blank lines and comments.
func (sc *textScanner) nextLine() bool {
	for sc.lines.Scan() {
		sc.lineNo++
		line := strings.TrimSpace(sc.lines.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		sc.fields = strings.Fields(line)
		return true
	}
	sc.LastError = sc.lines.Err()
	return false
}

func (sc *textScanner) syntaxError(token *lineToken, format string, args ...interface{}) (*lineToken, scannerStep) {
	token.Error = fmt.Errorf("%w: line %d: %s", ErrSyntax, token.LineNo, fmt.Sprintf(format, args...))
	return token, nil
}

func (sc *textScanner) scanRuleNumber(token *lineToken) (*lineToken, scannerStep) {
	n, err := strconv.Atoi(sc.fields[0])
	if err != nil {
		return sc.syntaxError(token, "rule number expected, found %q", sc.fields[0])
	}
	token.Num = n
	return token, sc.scanLHS
}

func (sc *textScanner) scanLHS(token *lineToken) (*lineToken, scannerStep) {
	if len(sc.fields) < 2 {
		return sc.syntaxError(token, "left hand side missing")
	}
	token.LHS = sc.fields[1]
	return token, sc.scanArrow
}

func (sc *textScanner) scanArrow(token *lineToken) (*lineToken, scannerStep) {
	if len(sc.fields) < 3 {
		return sc.syntaxError(token, "'->' missing")
	}
	if !arrows[sc.fields[2]] {
		return sc.syntaxError(token, "'->' expected, found %q", sc.fields[2])
	}
	return token, sc.scanRHS
}

func (sc *textScanner) scanRHS(token *lineToken) (*lineToken, scannerStep) {
	token.RHS = append([]string{}, sc.fields[3:]...)
	return token, nil
}
