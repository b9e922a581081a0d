package cardinfo

import (
	"context"

	"cardlookup/internal/model"
	"cardlookup/internal/repo"
)

// GetCardInfo resolves name in table and parses its card.
// A missing name is user-facing; every failure after a successful lookup is
// wrapped with the holder's name and tagged as diagnostic, token-count
// mismatches included.
func GetCardInfo(ctx context.Context, table repo.CardTable, name string) (model.Card, error) {
	raw, ok, err := table.Raw(ctx, name)
	if err != nil {
		return model.Card{}, Wrap(err, "lookup of %s failed", name)
	}
	if !ok {
		return model.Card{}, InvalidInput("No credit card was found for %s.", name)
	}

	card, err := ParseCard(raw)
	if err != nil {
		return model.Card{}, Wrap(err, "%s's card could not be parsed.", name)
	}
	return card, nil
}
