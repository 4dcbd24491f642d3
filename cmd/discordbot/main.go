/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/kyutd/config"
	"github.com/mikeb26/kyutd/internal"
)

var (
	cfg          config.Config
	botPubKey    ed25519.PublicKey
	client       *discordgo.Session
	rosterClient *http.Client
)

type TopLevelCommand string

const (
	BracketCmd TopLevelCommand = "bracket"
)

type CmdHandler func(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	BracketCmd: bracketCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, botPubKey) {
		log.Printf("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("discordbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, string(body))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := dispatch(r.Context(), &inter)
	if resp == nil {
		log.Printf("discordbot.int: unimplemented interaction type %v", inter.Type)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("discordbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(rawResp); err != nil {
		log.Printf("discordbot.int: failed to write resp: err:%v", err)
	}
}

// dispatch returns the response to a verified interaction, or nil for
// interaction types the bot does not handle.
func dispatch(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	switch inter.Type {
	case discordgo.InteractionPing:
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponsePong,
		}
	case discordgo.InteractionApplicationCommand:
		name := inter.ApplicationCommandData().Name
		hdlr, ok := topLevelCmdHdlrs[TopLevelCommand(name)]
		if !ok {
			return &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: fmt.Sprintf("unknown command '%v'", name),
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			}
		}
		return hdlr(ctx, inter)
	}

	return nil
}

func setup(ctx context.Context) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	pubKeyBytes, err := hex.DecodeString(cfg.Discord.PublicKey)
	if err != nil || len(pubKeyBytes) != ed25519.PublicKeySize {
		return fmt.Errorf("unable to parse discord.public_key: %v", err)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)

	client, err = discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("unable to initialize discord client: %w", err)
	}

	rosterClient = internal.NewCachedHttpClient(ctx, internal.CacheOptions{
		Bucket: cfg.Cache.Bucket,
		Gzip:   cfg.Cache.Gzip,
		MaxAge: cfg.Cache.MaxAge,
	})

	return nil
}

func cmdHash(cmd *discordgo.ApplicationCommand) (string, error) {
	cmdJson, err := json.Marshal(cmd)
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(cmdJson)
	return hex.EncodeToString(hash[:]), nil
}

func shouldUpdateCmdRegistration(cmd *discordgo.ApplicationCommand) bool {
	hexString, err := cmdHash(cmd)
	if err != nil {
		log.Printf("discordbot.reg: failed to marshal cmd: %v", err)
		return false
	}

	shouldUpdate := (hexString != cfg.Discord.CmdHash)
	if shouldUpdate {
		log.Printf("discordbot.reg: updating cmd reg; please set discord.cmd_hash to %v",
			hexString)
	}

	return shouldUpdate
}

func registerSlashCommands() {
	cmd := bracketCommand()

	if cfg.Discord.CmdID == "" {
		created, err := client.ApplicationCommandCreate(cfg.Discord.AppID, "", cmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to register %v: %v", cmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: registered %v(cmdID:%v); please set discord.cmd_id",
			created.Name, created.ID)
	} else if shouldUpdateCmdRegistration(cmd) {
		updated, err := client.ApplicationCommandEdit(cfg.Discord.AppID, "",
			cfg.Discord.CmdID, cmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to update %v: %v", cmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: updated %v(cmdID:%v)", updated.Name, updated.ID)
	}
}

func main() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
	ctx := context.Background()

	if err := setup(ctx); err != nil {
		log.Fatalf("discordbot.main: setup failed: %v", err)
	}

	go registerSlashCommands()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("discordbot.main: starting server on %v%v", hostname,
		cfg.Discord.Listen)

	http.HandleFunc("/DiscordBot/Interaction", interactionHandler)
	if err := http.ListenAndServe(cfg.Discord.Listen, nil); err != nil {
		log.Fatalf("discordbot.main: Serve failed: %v", err)
	}

	log.Printf("discordbot.main: exiting")
}
