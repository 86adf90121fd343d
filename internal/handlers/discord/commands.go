package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	boterr "github.com/tavernbot/dicebot/internal/errors"
)

const helpText = `Available commands:
.r <dice expression> - roll dice (.dicehelp for the full grammar)
.dicehelp - show the dice expression guide
.fortune - draw your daily fortune (once per person per day)
.lore <keyword> - look up a rules entry
.draw <deck> [count] - draw cards from a deck
.decks - list available decks
.status - show bot status

Examples:
.r d20
.r 2d6+3 d8
.lore grapple
.draw omens 2`

func (h *Handler) handleRoll(ctx context.Context, req *request) (string, error) {
	return h.provider.RollService.Execute(req.args, req.nickname)
}

func (h *Handler) handleDiceHelp(ctx context.Context, req *request) (string, error) {
	return h.provider.RollService.Help(), nil
}

func (h *Handler) handleHelp(ctx context.Context, req *request) (string, error) {
	return helpText, nil
}

func (h *Handler) handleFortune(ctx context.Context, req *request) (string, error) {
	result, err := h.provider.FortuneService.GetDaily(ctx, req.userID)
	if err != nil {
		return "", err
	}

	if result.AlreadyQueried {
		return fmt.Sprintf("**%s** has already consulted the dice today. Come back tomorrow!", req.nickname), nil
	}
	return fmt.Sprintf("**%s**'s fortune today: %d (%s)", req.nickname, result.Value, result.Tier), nil
}

func (h *Handler) handleLore(ctx context.Context, req *request) (string, error) {
	if req.args == "" {
		return "Give me a keyword to look up, e.g. .lore grapple", nil
	}

	entries := h.provider.LoreService.Search(req.args)
	if len(entries) == 0 {
		return fmt.Sprintf("No entries matching %q", req.args), nil
	}

	parts := make([]string, len(entries))
	for i, entry := range entries {
		parts[i] = fmt.Sprintf("**%s**\n%s", entry.Term, entry.Content)
	}
	return strings.Join(parts, "\n\n"), nil
}

func (h *Handler) handleDraw(ctx context.Context, req *request) (string, error) {
	fields := strings.Fields(req.args)
	if len(fields) == 0 {
		return "Tell me which deck to draw from, e.g. .draw omens 2", nil
	}

	name := fields[0]
	requested := 1
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[1]); err == nil && n > 1 {
			requested = n
		}
	}

	cards, size, err := h.provider.DeckService.Draw(ctx, name, requested)
	if boterr.IsNotFound(err) {
		return fmt.Sprintf("Unknown deck: %s (see .decks)", name), nil
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** drew %d from %s:\n", req.nickname, len(cards), name)
	for _, card := range cards {
		b.WriteString("- ")
		b.WriteString(card)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "(deck holds %d cards", size)
	if requested > size {
		b.WriteString(", every card was drawn")
	}
	b.WriteString(")")
	return b.String(), nil
}

func (h *Handler) handleDecks(ctx context.Context, req *request) (string, error) {
	infos := h.provider.DeckService.List(ctx)
	if len(infos) == 0 {
		return "No decks are configured.", nil
	}

	lines := make([]string, 0, len(infos)+2)
	lines = append(lines, "Available decks:")
	for _, info := range infos {
		lines = append(lines, fmt.Sprintf("%s (%d cards) - file: %s", info.Name, info.Size, info.File))
	}
	lines = append(lines, "", "Usage: .draw <deck> [count]")
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) handleStatus(ctx context.Context, req *request) (string, error) {
	return fmt.Sprintf("Bot status: running\nUptime: %s", time.Since(h.started).Round(time.Second)), nil
}
