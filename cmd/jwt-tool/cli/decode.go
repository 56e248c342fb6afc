package cli

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/jwtdecode/jwt"
	"github.com/effective-security/xlog"
)

// DecodeCmd prints the header and payload of a token
type DecodeCmd struct {
	Token []string `arg:"" optional:"" help:"JWT to decode, if not provided a single line is read from stdin"`
}

// Run the command
func (a *DecodeCmd) Run(ctx *Cli) error {
	var raw string
	switch len(a.Token) {
	case 0:
		line, err := ctx.ReadLine()
		if err != nil {
			return err
		}
		raw = line
	case 1:
		raw = a.Token[0]
	default:
		return errors.Newf("expected a single token, got %d arguments", len(a.Token))
	}

	token, err := jwt.DecodeToken(raw)
	if err != nil {
		return err
	}
	logger.KV(xlog.DEBUG, "reason", "decoded", "signature_len", len(token.Signature))

	return ctx.WriteToken(token)
}

// ReadLine reads a single line from the reader, including the new line if any
func (c *Cli) ReadLine() (string, error) {
	line, err := bufio.NewReader(c.Reader()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.WithMessage(err, "unable to read token")
	}
	return line, nil
}
