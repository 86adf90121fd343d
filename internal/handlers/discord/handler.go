// Package discord routes prefixed chat messages to the bot's commands.
package discord

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/tavernbot/dicebot/internal/services"
	"github.com/tavernbot/dicebot/internal/uuid"
)

// commandKind enumerates every chat command the bot answers.
type commandKind int

const (
	cmdRoll commandKind = iota
	cmdDiceHelp
	cmdHelp
	cmdFortune
	cmdLore
	cmdDraw
	cmdDecks
	cmdStatus
)

// request carries everything a command handler needs from one message.
type request struct {
	userID   string
	nickname string
	args     string
}

type commandFunc func(ctx context.Context, req *request) (string, error)

// Handler dispatches Discord messages to command handlers
type Handler struct {
	provider *services.Provider
	prefix   string
	uuidGen  uuid.Generator
	started  time.Time

	// Closed dispatch table, built once in NewHandler. The first
	// whitespace-delimited word of a message must match a command
	// name exactly.
	kinds    map[string]commandKind
	handlers map[commandKind]commandFunc
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	CommandPrefix   string
	UUIDGenerator   uuid.Generator
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	prefix := cfg.CommandPrefix
	if prefix == "" {
		prefix = "."
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	h := &Handler{
		provider: cfg.ServiceProvider,
		prefix:   prefix,
		uuidGen:  gen,
		started:  time.Now(),
	}

	h.kinds = map[string]commandKind{
		"r":        cmdRoll,
		"dicehelp": cmdDiceHelp,
		"help":     cmdHelp,
		"fortune":  cmdFortune,
		"lore":     cmdLore,
		"draw":     cmdDraw,
		"decks":    cmdDecks,
		"status":   cmdStatus,
	}
	h.handlers = map[commandKind]commandFunc{
		cmdRoll:     h.handleRoll,
		cmdDiceHelp: h.handleDiceHelp,
		cmdHelp:     h.handleHelp,
		cmdFortune:  h.handleFortune,
		cmdLore:     h.handleLore,
		cmdDraw:     h.handleDraw,
		cmdDecks:    h.handleDecks,
		cmdStatus:   h.handleStatus,
	}
	return h
}

// HandleMessageCreate is registered with discordgo for message events
func (h *Handler) HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	req := &request{
		userID:   m.Author.ID,
		nickname: displayName(m),
	}

	reply, handled := h.dispatch(context.Background(), req, m.Content)
	if !handled {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		log.Printf("Failed to send reply to channel %s: %v", m.ChannelID, err)
	}
}

// dispatch resolves and runs the command in content. Reports false when
// the message is not a command for this bot.
func (h *Handler) dispatch(ctx context.Context, req *request, content string) (reply string, handled bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], h.prefix) {
		return "", false
	}

	word := strings.TrimPrefix(fields[0], h.prefix)
	kind, ok := h.kinds[word]
	if !ok {
		return "", false
	}
	req.args = strings.Join(fields[1:], " ")

	// Correlation ID ties the log lines of one command together.
	id := h.uuidGen.New()
	log.Printf("[%s] command %s%s from user %s", id, h.prefix, word, req.userID)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] panic handling %s%s: %v", id, h.prefix, word, r)
			reply = h.failureReply()
			handled = true
		}
	}()

	out, err := h.handlers[kind](ctx, req)
	if err != nil {
		log.Printf("[%s] command %s%s failed: %v", id, h.prefix, word, err)
		return h.failureReply(), true
	}
	return out, true
}

func (h *Handler) failureReply() string {
	return "Something went wrong running that command. Try " + h.prefix + "help."
}

// displayName picks the friendliest name available for the reply header:
// guild nickname, then global display name, then the account name.
func displayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	if m.Author.Username != "" {
		return m.Author.Username
	}
	return "Roller"
}
