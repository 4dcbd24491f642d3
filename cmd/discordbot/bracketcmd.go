/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/kyutd/render"
	"github.com/mikeb26/kyutd/roster"
	"github.com/mikeb26/kyutd/tournament"
)

type BracketSubCommand string

const (
	BracketAboutCmd    BracketSubCommand = "about"
	BracketHelpCmd     BracketSubCommand = "help"
	BracketCountsCmd   BracketSubCommand = "counts"
	BracketPairingsCmd BracketSubCommand = "pairings"
	BracketLintCmd     BracketSubCommand = "lint"
)

var bracketSubCmdHdlrs = map[BracketSubCommand]CmdHandler{
	BracketAboutCmd:    bracketAboutCmdHandler,
	BracketHelpCmd:     bracketHelpCmdHandler,
	BracketCountsCmd:   bracketCountsCmdHandler,
	BracketPairingsCmd: bracketPairingsCmdHandler,
	BracketLintCmd:     bracketLintCmdHandler,
}

func urlOption(desc string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "url",
		Description: desc,
		Required:    true,
	}
}

func broadcastOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
		Required:    false,
	}
}

func bracketCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        string(BracketCmd),
		Description: "First round bracket commands; try /bracket help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BracketHelpCmd),
				Description: "Show usage for bracket",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BracketAboutCmd),
				Description: "Show information about kyutd",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BracketCountsCmd),
				Description: "Show per-division head counts and walkovers",
				Options: []*discordgo.ApplicationCommandOption{
					urlOption("URL of the roster"),
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BracketPairingsCmd),
				Description: "Draw first round pairings",
				Options: []*discordgo.ApplicationCommandOption{
					urlOption("URL of the roster"),
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "seed",
						Description: "Shuffle seed to reproduce a draw (default picks one)",
						Required:    false,
					},
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(BracketLintCmd),
				Description: "Check a roster for skipped rows and similar affiliations",
				Options: []*discordgo.ApplicationCommandOption{
					urlOption("URL of the roster"),
				},
			},
		},
	}
}

func bracketCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := bracketHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := bracketSubCmdHdlrs[BracketSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

func newEphemeralResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// subCmdArgs holds the options given to a /bracket sub command.
type subCmdArgs struct {
	url       string
	seed      int64
	broadcast bool
}

func parseSubCmdArgs(inter *discordgo.Interaction) subCmdArgs {
	var args subCmdArgs
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return args
	}
	for _, opt := range data.Options[0].Options {
		switch opt.Name {
		case "url":
			args.url = strings.TrimSpace(opt.StringValue())
		case "seed":
			args.seed = opt.IntValue()
		case "broadcast":
			args.broadcast = opt.BoolValue()
		}
	}
	return args
}

// loadRoster loads the roster at args.url. Only http(s) URLs are accepted;
// the bot never reads local files.
func loadRoster(ctx context.Context, args subCmdArgs) (*tournament.Tournament, error) {
	if !strings.HasPrefix(args.url, "http://") && !strings.HasPrefix(args.url, "https://") {
		return nil, fmt.Errorf("please provide an http(s) roster URL")
	}
	return tournament.Load(ctx, rosterClient, []string{args.url})
}

//go:embed about.txt
var aboutText string

func bracketAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	resp.Data.Content = truncateContent(aboutText)
	return resp
}

//go:embed help.md
var helpText string

func bracketHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	resp.Data.Content = truncateContent(helpText)
	return resp
}

func bracketCountsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	args := parseSubCmdArgs(inter)
	t, err := loadRoster(ctx, args)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading roster: %v", err)
		log.Printf("discordbot.counts: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```", truncateContent(t.Counts()))

	if args.broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// bracketPairingsCmdHandler handles the /bracket pairings command to draw
// and display first round pairings
func bracketPairingsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	args := parseSubCmdArgs(inter)
	t, err := loadRoster(ctx, args)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading roster: %v", err)
		log.Printf("discordbot.pairings: %v", resp.Data.Content)
		return resp
	}
	if len(t.Roster.Competitors) == 0 {
		resp.Data.Content = "No competitors found in the roster."
		log.Printf("discordbot.pairings: %v", resp.Data.Content)
		return resp
	}

	d := t.Pair(args.seed)
	log.Printf("discordbot.pairings: %v seed:%v", args.url, d.Seed)

	header := fmt.Sprintf("Seed: %v\n", d.Seed)
	if n := d.ClubmateMatches(); n > 0 {
		header += fmt.Sprintf("%v unavoidable same-affiliation matches\n", n)
	}
	resp.Data.Content = fmt.Sprintf("%s```\n%s```", header,
		truncateContent(render.BuildPairingsOutput(d.Tables)))

	if args.broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

func bracketLintCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResponse()
	args := parseSubCmdArgs(inter)
	t, err := loadRoster(ctx, args)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading roster: %v", err)
		log.Printf("discordbot.lint: %v", resp.Data.Content)
		return resp
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**Competitors**: %d\n", len(t.Roster.Competitors)))
	sb.WriteString(fmt.Sprintf("**Skipped rows**: %d\n", len(t.Roster.Skipped)))
	for _, s := range t.Roster.Skipped {
		sb.WriteString(fmt.Sprintf("- line %d: %s\n", s.Line, s.Reason))
	}
	pairs := roster.SimilarAffiliations(t.Roster.Competitors, cfg.Lint.MaxRatio)
	sb.WriteString(fmt.Sprintf("**Similar affiliations**: %d\n", len(pairs)))
	for _, p := range pairs {
		sb.WriteString(fmt.Sprintf("- %s ~ %s\n", p.A, p.B))
	}
	resp.Data.Content = truncateContent(sb.String())

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1900 // keep space for the seed line and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
