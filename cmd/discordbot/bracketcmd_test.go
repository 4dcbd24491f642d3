/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

const testRoster = "Id,級,組,所属,名前\n" +
	"1,1級,A,東京,a\n" +
	"2,1級,A,大阪,b\n" +
	"3,1級,A,京都,c\n" +
	"4,2級,,東京,d\n" +
	"5,2級,,Tokyo,e\n" +
	"6,2級,,tokyo,f\n" +
	"7,2級\n"

func rosterServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testRoster))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func subCmdInteraction(sub string,
	opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {

	return &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: string(BracketCmd),
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{
					Name:    sub,
					Type:    discordgo.ApplicationCommandOptionSubCommand,
					Options: opts,
				},
			},
		},
	}
}

func urlOpt(url string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "url",
		Type:  discordgo.ApplicationCommandOptionString,
		Value: url,
	}
}

func seedOpt(seed float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "seed",
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: seed,
	}
}

func broadcastOpt() *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "broadcast",
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: true,
	}
}

func TestBracketPairingsCmdHandler(t *testing.T) {
	ctx := context.Background()
	srv := rosterServer(t)

	resp := bracketCmdHandler(ctx, subCmdInteraction("pairings",
		urlOpt(srv.URL), seedOpt(5), broadcastOpt()))
	if resp == nil || resp.Data == nil {
		t.Fatal("Expected non-nil response data")
	}
	if resp.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("Expected response type %v, got %v",
			discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	}
	content := resp.Data.Content
	for _, want := range []string{"Seed: 5\n", "```\n", "1級A の対戦組み合わせ", "2級 の対戦組み合わせ"} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected content to contain %q, got %q", want, content)
		}
	}
	if resp.Data.Flags != 0 {
		t.Errorf("Expected broadcast response, got flags %v", resp.Data.Flags)
	}

	again := bracketCmdHandler(ctx, subCmdInteraction("pairings",
		urlOpt(srv.URL), seedOpt(5), broadcastOpt()))
	if again.Data.Content != content {
		t.Errorf("Same seed produced a different draw")
	}
}

func TestBracketCountsCmdHandler(t *testing.T) {
	srv := rosterServer(t)

	resp := bracketCmdHandler(context.Background(), subCmdInteraction("counts",
		urlOpt(srv.URL)))
	content := resp.Data.Content
	if !strings.HasPrefix(content, "```\n") || !strings.Contains(content, "1級A") {
		t.Errorf("Unexpected counts output %q", content)
	}
	if resp.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Errorf("Expected ephemeral response, got flags %v", resp.Data.Flags)
	}
}

func TestBracketLintCmdHandler(t *testing.T) {
	cfg.Lint.MaxRatio = 0.34
	srv := rosterServer(t)

	resp := bracketCmdHandler(context.Background(), subCmdInteraction("lint",
		urlOpt(srv.URL)))
	content := resp.Data.Content
	for _, want := range []string{"**Competitors**: 6", "**Skipped rows**: 1",
		"- line 8: expected 5 columns, got 2", "Tokyo ~ tokyo"} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected content to contain %q, got %q", want, content)
		}
	}
}

func TestBracketRosterErrors(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name  string
		inter *discordgo.Interaction
	}{
		{name: "no url", inter: subCmdInteraction("pairings")},
		{name: "file path", inter: subCmdInteraction("counts", urlOpt("/etc/passwd"))},
		{name: "lint file path", inter: subCmdInteraction("lint", urlOpt("roster.csv"))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp := bracketCmdHandler(ctx, c.inter)
			if !strings.HasPrefix(resp.Data.Content, "Error loading roster") {
				t.Errorf("%s: got %q", c.name, resp.Data.Content)
			}
			if resp.Data.Flags != discordgo.MessageFlagsEphemeral {
				t.Errorf("%s: errors should be ephemeral", c.name)
			}
		})
	}
}

func TestBracketHelpIsDefault(t *testing.T) {
	inter := &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: string(BracketCmd)},
	}
	resp := bracketCmdHandler(context.Background(), inter)
	if resp.Data.Content != truncateContent(helpText) {
		t.Errorf("Expected help text, got %q", resp.Data.Content)
	}

	resp = bracketCmdHandler(context.Background(), subCmdInteraction("about"))
	if !strings.Contains(resp.Data.Content, "kyutd") {
		t.Errorf("Expected about text, got %q", resp.Data.Content)
	}
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	resp := dispatch(ctx, &discordgo.Interaction{Type: discordgo.InteractionPing})
	if resp == nil || resp.Type != discordgo.InteractionResponsePong {
		t.Errorf("Expected pong, got %+v", resp)
	}

	resp = dispatch(ctx, &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: "td"},
	})
	if resp == nil || !strings.Contains(resp.Data.Content, "unknown command 'td'") {
		t.Errorf("Expected unknown command response, got %+v", resp)
	}

	if resp := dispatch(ctx, &discordgo.Interaction{Type: discordgo.InteractionModalSubmit}); resp != nil {
		t.Errorf("Expected nil for unhandled interaction type, got %+v", resp)
	}
}

func TestBracketCommandDefinition(t *testing.T) {
	cmd := bracketCommand()
	if cmd.Name != "bracket" {
		t.Errorf("Expected command name bracket, got %v", cmd.Name)
	}
	for _, opt := range cmd.Options {
		if _, ok := bracketSubCmdHdlrs[BracketSubCommand(opt.Name)]; !ok {
			t.Errorf("Sub command %v has no handler", opt.Name)
		}
	}
	if len(cmd.Options) != len(bracketSubCmdHdlrs) {
		t.Errorf("Expected %d sub commands, got %d", len(bracketSubCmdHdlrs),
			len(cmd.Options))
	}

	h1, err := cmdHash(cmd)
	if err != nil {
		t.Fatal(err)
	}
	h2, _ := cmdHash(bracketCommand())
	if h1 != h2 || len(h1) != 64 {
		t.Errorf("Expected stable sha256 hash, got %q and %q", h1, h2)
	}
}

func TestTruncateContent(t *testing.T) {
	short := "hello"
	if got := truncateContent(short); got != short {
		t.Errorf("got %q", got)
	}
	long := strings.Repeat("級", 3000)
	got := truncateContent(long)
	if n := len([]rune(got)); n != 1903 {
		t.Errorf("Expected 1903 runes, got %d", n)
	}
}
