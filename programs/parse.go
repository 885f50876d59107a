package programs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/reusee/intcode/intvm"
)

var ErrSyntax = errors.New("program syntax error")

// Parse reads comma separated decimal integers. Whitespace around fields and
// a trailing newline are ignored.
func Parse(r io.Reader) (intvm.Program, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, wrap(err)
	}
	content = bytes.TrimSpace(content)
	if len(content) == 0 {
		return intvm.Program{}, nil
	}
	fields := bytes.Split(content, []byte(","))
	program := make(intvm.Program, 0, len(fields))
	for i, field := range fields {
		field = bytes.TrimSpace(field)
		value, err := strconv.ParseInt(string(field), 10, 64)
		if err != nil {
			return nil, wrap(fmt.Errorf("%w: field %d: %q", ErrSyntax, i, field))
		}
		program = append(program, value)
	}
	return program, nil
}

func ParseString(s string) (intvm.Program, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is ParseString for literals known to be valid.
func MustParse(s string) intvm.Program {
	program, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return program
}

func Load(path string) (intvm.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrap(err)
	}
	defer f.Close()
	program, err := Parse(f)
	if err != nil {
		return nil, wrap(fmt.Errorf("%s: %w", path, err))
	}
	return program, nil
}

func Format(program intvm.Program) string {
	var b strings.Builder
	for i, value := range program {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(value, 10))
	}
	return b.String()
}
