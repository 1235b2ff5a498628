package diamond

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	fieldNamePattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

	errUnbalanced = errors.New("unbalanced parentheses")
)

// Function is a callable fragment of an Interface
type Function struct {
	Name            string
	Signature       string // sighash form, e.g. transfer(address,uint256)
	Selector        Selector
	StateMutability string
	Inputs          abi.Arguments
	Outputs         abi.Arguments
}

func functionFromMethod(m abi.Method) Function {
	var sel Selector
	copy(sel[:], m.ID)
	return Function{
		Name:            m.RawName,
		Signature:       m.Sig,
		Selector:        sel,
		StateMutability: m.StateMutability,
		Inputs:          m.Inputs,
		Outputs:         m.Outputs,
	}
}

// CanonicalSignature parses a human-readable declaration and returns its sighash form
func CanonicalSignature(decl string) (string, error) {
	fn, err := parseFunction(decl)
	if err != nil {
		return "", err
	}
	return fn.Signature, nil
}

// parseFunction parses declarations of the form
//
//	[function] name(type [name], ...) [modifiers] [returns (type [name], ...)]
//
// Every parameter type is validated by abi.NewType.
func parseFunction(decl string) (Function, error) {
	s := strings.TrimSpace(decl)
	if rest, ok := strings.CutPrefix(s, "function"); ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t') {
		s = strings.TrimSpace(rest)
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		return Function{}, invalidSignature(decl, "missing parameter list")
	}
	name := strings.TrimSpace(s[:open])
	if !identifierPattern.MatchString(name) {
		return Function{}, invalidSignature(decl, "invalid function name %q", name)
	}

	end, err := matchingParen(s, open)
	if err != nil {
		return Function{}, InvalidSignatureErr{Signature: decl, Reason: err}
	}
	inputs, err := parseParams(s[open+1 : end])
	if err != nil {
		return Function{}, InvalidSignatureErr{Signature: decl, Reason: err}
	}

	mutability := "nonpayable"
	var outputs abi.Arguments
	rest := strings.TrimSpace(s[end+1:])
	for rest != "" {
		if r, ok := strings.CutPrefix(rest, "returns"); ok {
			r = strings.TrimSpace(r)
			if !strings.HasPrefix(r, "(") {
				return Function{}, invalidSignature(decl, "returns requires a parameter list")
			}
			rend, err := matchingParen(r, 0)
			if err != nil {
				return Function{}, InvalidSignatureErr{Signature: decl, Reason: err}
			}
			if outputs, err = parseParams(r[1:rend]); err != nil {
				return Function{}, InvalidSignatureErr{Signature: decl, Reason: err}
			}
			rest = strings.TrimSpace(r[rend+1:])
			continue
		}

		word, tail, _ := strings.Cut(rest, " ")
		switch word {
		case "view", "pure", "payable", "nonpayable":
			mutability = word
		case "external", "public", "virtual", "override":
		default:
			return Function{}, invalidSignature(decl, "unexpected token %q", word)
		}
		rest = strings.TrimSpace(tail)
	}

	isConst := mutability == "view" || mutability == "pure"
	method := abi.NewMethod(name, name, abi.Function, mutability, isConst, mutability == "payable", inputs, outputs)
	return functionFromMethod(method), nil
}

func parseParams(s string) (abi.Arguments, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts, err := splitTopLevel(s)
	if err != nil {
		return nil, err
	}

	args := make(abi.Arguments, 0, len(parts))
	for i, p := range parts {
		m, err := parseParam(p)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		typ, err := abi.NewType(m.Type, "", m.Components)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		args = append(args, abi.Argument{Name: m.Name, Type: typ})
	}
	return args, nil
}

func parseParam(p string) (abi.ArgumentMarshaling, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return abi.ArgumentMarshaling{}, errors.New("empty parameter")
	}

	var m abi.ArgumentMarshaling
	var rest string
	if strings.HasPrefix(p, "tuple(") {
		p = strings.TrimPrefix(p, "tuple")
	}
	if strings.HasPrefix(p, "(") {
		end, err := matchingParen(p, 0)
		if err != nil {
			return m, err
		}
		comps, err := parseComponents(p[1:end])
		if err != nil {
			return m, err
		}
		dims, tail := splitArrayDims(p[end+1:])
		m.Type = "tuple" + dims
		m.Components = comps
		rest = tail
	} else {
		typ, tail, _ := strings.Cut(p, " ")
		m.Type = normalizeType(typ)
		rest = tail
	}

	for _, field := range strings.Fields(rest) {
		switch field {
		case "indexed", "memory", "calldata", "storage", "payable":
			continue
		}
		if m.Name != "" || !identifierPattern.MatchString(field) {
			return m, fmt.Errorf("unexpected token %q", field)
		}
		m.Name = field
	}
	return m, nil
}

// parseComponents parses tuple members. abi.NewType builds a Go struct for
// tuples, so every member needs an exported-safe field name.
func parseComponents(s string) ([]abi.ArgumentMarshaling, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty tuple")
	}
	parts, err := splitTopLevel(s)
	if err != nil {
		return nil, err
	}
	comps := make([]abi.ArgumentMarshaling, 0, len(parts))
	for i, p := range parts {
		c, err := parseParam(p)
		if err != nil {
			return nil, err
		}
		if !fieldNamePattern.MatchString(c.Name) {
			c.Name = fmt.Sprintf("field%d", i)
		}
		comps = append(comps, c)
	}
	return comps, nil
}

// normalizeType expands the uint/int/byte aliases, keeping any array suffix
func normalizeType(t string) string {
	base, dims := t, ""
	if i := strings.IndexByte(t, '['); i >= 0 {
		base, dims = t[:i], t[i:]
	}
	switch base {
	case "uint":
		base = "uint256"
	case "int":
		base = "int256"
	case "byte":
		base = "bytes1"
	}
	return base + dims
}

func splitArrayDims(s string) (dims, rest string) {
	for strings.HasPrefix(s, "[") {
		j := strings.IndexByte(s, ']')
		if j < 0 {
			break
		}
		dims += s[:j+1]
		s = s[j+1:]
	}
	return dims, s
}

func matchingParen(s string, open int) (int, error) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return -1, errUnbalanced
}

func splitTopLevel(s string) ([]string, error) {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errUnbalanced
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errUnbalanced
	}
	return append(parts, s[start:]), nil
}
