// File: internal/style/style.go
// Brief: Internal style package implementation for 'style tokens'.

// Package style resolves a closed set of named style tokens into fatih/color
// attributes. Tokens compose in order, so "bold yellow" becomes ESC[1;33m.
package style

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// Reset clears every attribute set by a previous sequence.
const Reset = "\x1b[0m"

// Token names one entry of the style table.
type Token string

const (
	TokenReset     Token = "reset"
	TokenBold      Token = "bold"
	TokenDim       Token = "dim"
	TokenUnderline Token = "underline"
	TokenBlink     Token = "blink"
	TokenInvert    Token = "invert"
	TokenNormal    Token = "normal"

	TokenBlack   Token = "black"
	TokenRed     Token = "red"
	TokenGreen   Token = "green"
	TokenYellow  Token = "yellow"
	TokenBlue    Token = "blue"
	TokenMagenta Token = "magenta"
	TokenCyan    Token = "cyan"
	TokenWhite   Token = "white"
	TokenDefault Token = "default"

	TokenBrightBlack   Token = "bright-black"
	TokenBrightRed     Token = "bright-red"
	TokenBrightGreen   Token = "bright-green"
	TokenBrightYellow  Token = "bright-yellow"
	TokenBrightBlue    Token = "bright-blue"
	TokenBrightMagenta Token = "bright-magenta"
	TokenBrightCyan    Token = "bright-cyan"
	TokenBrightWhite   Token = "bright-white"

	TokenBgBlack   Token = "bg-black"
	TokenBgRed     Token = "bg-red"
	TokenBgGreen   Token = "bg-green"
	TokenBgYellow  Token = "bg-yellow"
	TokenBgBlue    Token = "bg-blue"
	TokenBgMagenta Token = "bg-magenta"
	TokenBgCyan    Token = "bg-cyan"
	TokenBgWhite   Token = "bg-white"
	TokenBgDefault Token = "bg-default"
)

// SGR codes fatih/color does not name.
const (
	normalIntensity color.Attribute = 22
	fgDefault       color.Attribute = 39
	bgDefault       color.Attribute = 49
)

// ErrUnknownToken is returned by Parse for names outside the table.
var ErrUnknownToken = errors.New("unknown style token")

var table = map[Token][]color.Attribute{
	TokenReset:     {color.Reset},
	TokenBold:      {color.Bold},
	TokenDim:       {color.Faint, color.Italic},
	TokenUnderline: {color.Underline},
	TokenBlink:     {color.BlinkSlow},
	TokenInvert:    {color.ReverseVideo},
	TokenNormal:    {normalIntensity},

	TokenBlack:   {color.FgBlack},
	TokenRed:     {color.FgRed},
	TokenGreen:   {color.FgGreen},
	TokenYellow:  {color.FgYellow},
	TokenBlue:    {color.FgBlue},
	TokenMagenta: {color.FgMagenta},
	TokenCyan:    {color.FgCyan},
	TokenWhite:   {color.FgWhite},
	TokenDefault: {fgDefault},

	TokenBrightBlack:   {color.FgHiBlack},
	TokenBrightRed:     {color.FgHiRed},
	TokenBrightGreen:   {color.FgHiGreen},
	TokenBrightYellow:  {color.FgHiYellow},
	TokenBrightBlue:    {color.FgHiBlue},
	TokenBrightMagenta: {color.FgHiMagenta},
	TokenBrightCyan:    {color.FgHiCyan},
	TokenBrightWhite:   {color.FgHiWhite},

	TokenBgBlack:   {color.BgBlack},
	TokenBgRed:     {color.BgRed},
	TokenBgGreen:   {color.BgGreen},
	TokenBgYellow:  {color.BgYellow},
	TokenBgBlue:    {color.BgBlue},
	TokenBgMagenta: {color.BgMagenta},
	TokenBgCyan:    {color.BgCyan},
	TokenBgWhite:   {color.BgWhite},
	TokenBgDefault: {bgDefault},
}

// Valid reports whether t is part of the table.
func (t Token) Valid() bool {
	_, ok := table[t]
	return ok
}

// Color builds a fatih/color value carrying the attributes of tokens in
// order. Unknown tokens contribute nothing.
func Color(tokens ...Token) *color.Color {
	var attrs []color.Attribute
	for _, t := range tokens {
		attrs = append(attrs, table[t]...)
	}
	return color.New(attrs...)
}

// Func returns a function that wraps its argument in the tokens' attributes
// followed by a reset. It returns nil when tokens carry no attributes, and
// the wrapped text is plain whenever color.NoColor is set.
func Func(tokens ...Token) func(string) string {
	if !hasAttributes(tokens) {
		return nil
	}
	sprint := Color(tokens...).SprintFunc()
	return func(s string) string { return sprint(s) }
}

func hasAttributes(tokens []Token) bool {
	for _, t := range tokens {
		if len(table[t]) > 0 {
			return true
		}
	}
	return false
}

// Apply styles text with tokens. It returns text unchanged when colors are
// disabled or no tokens are given.
func Apply(text string, tokens ...Token) string {
	fn := Func(tokens...)
	if fn == nil {
		return text
	}
	return fn(text)
}

var camelPart = regexp.MustCompile(`[A-Z][a-z]+`)

// Parse turns a style spec into tokens. Fields are separated by spaces,
// commas or '+'. A field is either a token name ("bg-blue") or a CamelCase
// run of names ("BoldYellow", "%BgBlue").
func Parse(spec string) ([]Token, error) {
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ' ' || r == ',' || r == '+' || r == '\t'
	})
	var tokens []Token
	for _, field := range fields {
		field = strings.TrimPrefix(field, "%")
		if t := Token(strings.ToLower(field)); t.Valid() {
			tokens = append(tokens, t)
			continue
		}
		parsed, err := parseCamel(field)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, parsed...)
	}
	return tokens, nil
}

func parseCamel(field string) ([]Token, error) {
	parts := camelPart.FindAllString(field, -1)
	if len(parts) == 0 || strings.Join(parts, "") != field {
		return nil, fmt.Errorf("%w: %q", ErrUnknownToken, field)
	}
	var tokens []Token
	for i := 0; i < len(parts); i++ {
		name := strings.ToLower(parts[i])
		if (name == "bg" || name == "bright") && i+1 < len(parts) {
			name += "-" + strings.ToLower(parts[i+1])
			i++
		}
		t := Token(name)
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownToken, parts[i])
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// Painter parses spec and returns the function that styles text with it.
// An empty spec yields a nil function.
func Painter(spec string) (func(string) string, error) {
	tokens, err := Parse(spec)
	if err != nil {
		return nil, err
	}
	return Func(tokens...), nil
}
