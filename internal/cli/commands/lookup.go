package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cardlookup/internal/cardinfo"
	"cardlookup/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrReadInput is returned when the name cannot be read from In.
var ErrReadInput = errors.New("failed to read line")

// In и Out: общие reader/writer CLI. По умолчанию stdin/stdout, в тестах переназначаются.
var (
	In  io.Reader = os.Stdin
	Out io.Writer = os.Stdout
)

// Lookup asks for a name, resolves its card in table and prints the card or one error line.
// Lookup failures are printed and logged, not returned: only a read failure is an error.
func Lookup(ctx context.Context, table repo.CardTable, log *zap.SugaredLogger) error {
	fmt.Fprintln(Out, "Enter name:")

	name, err := readLine(In)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	reqID := uuid.NewString()
	log.Debugw("looking up card", "name", name, "request_id", reqID)

	card, err := cardinfo.GetCardInfo(ctx, table, name)
	if err != nil {
		fmt.Fprintln(Out, cardinfo.UserMessage(err))
		log.Errorw("card lookup failed",
			"error", cardinfo.FormatChain(err),
			"chain", cardinfo.Chain(err),
			"name", name,
			"kind", cardinfo.KindOf(err).String(),
			"request_id", reqID,
		)
		return nil
	}
	fmt.Fprintln(Out, card)
	return nil
}

// readLine читает одну строку. EOF без перевода строки не ошибка: ключом станет прочитанное.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return line, nil
}
