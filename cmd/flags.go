package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/iodb"
	"github.com/gnames/gnkey/pkg/db"
)

// weightOverrides turns repeated name=value flags into a map. Entries
// without "=" are skipped with a warning.
func weightOverrides(flags []string) map[string]string {
	res := make(map[string]string, len(flags))
	for _, v := range flags {
		name, value, ok := strings.Cut(v, "=")
		if !ok {
			gn.Warn("Ignoring weight <em>%s</em>, expected name=value", v)
			continue
		}
		res[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return res
}

// confirm asks a yes/no question and reads the answer from r.
func confirm(r io.Reader, question string) (bool, error) {
	fmt.Printf("\n%s (yes/no): ", question)
	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && answer == "" {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "yes" || answer == "y", nil
}

// connect opens the database configured in cfg. The caller closes the
// operator.
func connect(ctx context.Context) (db.Operator, error) {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}
	gn.Info("Connected to <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)
	return op, nil
}
